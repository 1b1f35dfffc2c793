package recommend

import (
	"context"

	"wanderlust/internal/models/request_models"
	"wanderlust/internal/models/response_models"
)

// Recommender is the narrow boundary to the generative recommendation
// service: one method per request shape. Implementations translate the
// inputs into a schema-constrained prompt and validate the structured
// response; the response schema never leaks past this package.
type Recommender interface {
	// SuggestDestinations returns destination candidates for a preference
	// set. IDs are assigned positionally (0-based) after receipt.
	SuggestDestinations(ctx context.Context, prefs request_models.TripPreferences) ([]response_models.SuggestedDestination, error)

	// GenerateItinerary produces the day-indexed items of a full trip for
	// the selected destinations, honoring the scheduling rules embedded in
	// the prompt.
	GenerateItinerary(ctx context.Context, destinations []response_models.SuggestedDestination, prefs request_models.TripPreferences) ([]response_models.GeneratedItem, error)

	// RecommendPlaces returns place candidates for a free-text query, used
	// by the curation dialog in both add and replace mode.
	RecommendPlaces(ctx context.Context, query string) ([]response_models.PlaceRecommendation, error)
}

// jsonGenerator is the single capability a model backend must provide:
// prompt in, JSON text out.
type jsonGenerator interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}

type recommender struct {
	backend jsonGenerator
}

func (r *recommender) SuggestDestinations(ctx context.Context, prefs request_models.TripPreferences) ([]response_models.SuggestedDestination, error) {
	raw, err := r.backend.GenerateJSON(ctx, destinationsPrompt(prefs))
	if err != nil {
		return nil, err
	}
	return parseDestinations(raw)
}

func (r *recommender) GenerateItinerary(ctx context.Context, destinations []response_models.SuggestedDestination, prefs request_models.TripPreferences) ([]response_models.GeneratedItem, error) {
	raw, err := r.backend.GenerateJSON(ctx, itineraryPrompt(destinations, prefs))
	if err != nil {
		return nil, err
	}
	return parseGeneratedItems(raw)
}

func (r *recommender) RecommendPlaces(ctx context.Context, query string) ([]response_models.PlaceRecommendation, error) {
	raw, err := r.backend.GenerateJSON(ctx, placesPrompt(query))
	if err != nil {
		return nil, err
	}
	return parsePlaces(raw)
}
