package trip_fx

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"wanderlust/internal/api/controllers"
	"wanderlust/internal/infra"
	"wanderlust/internal/repositories"
	"wanderlust/internal/services"
)

var Module = fx.Provide(
	provideRedis,
	provideTripRepo,
	provideTripService,
	provideTripController,
)

func provideRedis(lc fx.Lifecycle) *redis.Client {
	client := infra.InitRedis()
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseRedis(client)
			return nil
		},
	})
	return client
}

func provideTripRepo(client *redis.Client) repositories.TripRepository {
	return repositories.NewTripRepository(client)
}

func provideTripService(repo repositories.TripRepository) services.TripServiceInterface {
	return services.NewTripService(repo)
}

func provideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}
