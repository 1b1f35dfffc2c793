package wizard_fx

import (
	"go.uber.org/fx"

	"wanderlust/internal/api/controllers"
	"wanderlust/internal/recommend"
	"wanderlust/internal/services"
	"wanderlust/pkg/utils"
)

var Module = fx.Provide(provideWizardService, provideWizardController)

func provideWizardService(
	recommender recommend.Recommender,
	images utils.ImageService,
	tripService services.TripServiceInterface,
) services.WizardServiceInterface {
	return services.NewWizardService(recommender, images, tripService)
}

func provideWizardController(wizardService services.WizardServiceInterface) *controllers.WizardController {
	return controllers.NewWizardController(wizardService)
}
