package curation_fx

import (
	"go.uber.org/fx"

	"wanderlust/internal/api/controllers"
	"wanderlust/internal/recommend"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

var Module = fx.Provide(provideCurationService, provideCurationController)

func provideCurationService(
	recommender recommend.Recommender,
	images utils.ImageService,
	tripService services.TripServiceInterface,
) services.CurationServiceInterface {
	return services.NewCurationService(recommender, images, tripService)
}

func provideCurationController(curationService services.CurationServiceInterface) *controllers.CurationController {
	return controllers.NewCurationController(curationService)
}
