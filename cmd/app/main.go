package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"wanderlust/cmd/fx/curation_fx"
	"wanderlust/cmd/fx/recommend_fx"
	"wanderlust/cmd/fx/trip_fx"
	"wanderlust/cmd/fx/wizard_fx"
	"wanderlust/internal/api/controllers"
	"wanderlust/internal/services"
	"wanderlust/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		trip_fx.Module,
		recommend_fx.Module,
		wizard_fx.Module,
		curation_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(LoadTrips),
		fx.Invoke(StartServer),
	)

	app.Run()
}

// LoadTrips hydrates the trip store before the server starts accepting
// requests. Seed trips are written on first run.
func LoadTrips(lc fx.Lifecycle, tripService services.TripServiceInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return tripService.Load(ctx)
		},
	})
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Println("Starting HTTP server at :" + port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tripController *controllers.TripController,
	wizardController *controllers.WizardController,
	curationController *controllers.CurationController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, tripController, wizardController, curationController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	wizardController *controllers.WizardController,
	curationController *controllers.CurationController) {

	tripsGroup := r.Group("/trips")
	tripsGroup.GET("", tripController.ListTrips)
	tripsGroup.GET("/:tripId", tripController.GetTrip)
	tripsGroup.PUT("/:tripId", tripController.UpdateTrip)
	tripsGroup.POST("/select", tripController.SelectTrip)
	tripsGroup.GET("/:tripId/days", tripController.GetDayView)

	wizardGroup := r.Group("/wizard")
	wizardGroup.POST("/start", wizardController.StartWizard)
	wizardGroup.GET("/:sessionId", wizardController.GetState)
	wizardGroup.POST("/preferences", wizardController.SubmitPreferences)
	wizardGroup.POST("/destinations/toggle", wizardController.ToggleDestination)
	wizardGroup.POST("/back", wizardController.Back)
	wizardGroup.POST("/generate", wizardController.Generate)
	wizardGroup.DELETE("/:sessionId", wizardController.Cancel)

	curationGroup := r.Group("/curation")
	curationGroup.POST("/open", curationController.Open)
	curationGroup.GET("/:sessionId", curationController.GetState)
	curationGroup.POST("/search", curationController.Search)
	curationGroup.POST("/selection/toggle", curationController.ToggleSelection)
	curationGroup.POST("/day", curationController.SelectDay)
	curationGroup.POST("/day/next", curationController.NextDay)
	curationGroup.POST("/confirm", curationController.Confirm)
	curationGroup.DELETE("/:sessionId", curationController.Close)
}
