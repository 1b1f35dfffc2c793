package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"wanderlust/internal/models/db_models"
	"wanderlust/internal/models/request_models"
	"wanderlust/internal/models/response_models"
)

// fakeTripRepo is an in-memory stand-in for the redis-backed repository.
type fakeTripRepo struct {
	mu      sync.Mutex
	trips   []db_models.Trip
	lastID  string
	loadErr error
	saveErr error

	tripSaves int
}

func (r *fakeTripRepo) LoadTrips(ctx context.Context) ([]db_models.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	out := make([]db_models.Trip, len(r.trips))
	copy(out, r.trips)
	return out, nil
}

func (r *fakeTripRepo) SaveTrips(ctx context.Context, trips []db_models.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.trips = make([]db_models.Trip, len(trips))
	copy(r.trips, trips)
	r.tripSaves++
	return nil
}

func (r *fakeTripRepo) LoadLastTripID(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return "", r.loadErr
	}
	return r.lastID, nil
}

func (r *fakeTripRepo) SaveLastTripID(ctx context.Context, tripID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.lastID = tripID
	return nil
}

func (r *fakeTripRepo) savedTripCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tripSaves
}

func (r *fakeTripRepo) savedLastID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastID
}

// fakeRecommender dispatches each call to a swappable function so tests can
// block, fail or count individual requests.
type fakeRecommender struct {
	suggestFn func(ctx context.Context, prefs request_models.TripPreferences) ([]response_models.SuggestedDestination, error)
	itinFn    func(ctx context.Context, destinations []response_models.SuggestedDestination, prefs request_models.TripPreferences) ([]response_models.GeneratedItem, error)
	placesFn  func(ctx context.Context, query string) ([]response_models.PlaceRecommendation, error)
}

func (f *fakeRecommender) SuggestDestinations(ctx context.Context, prefs request_models.TripPreferences) ([]response_models.SuggestedDestination, error) {
	return f.suggestFn(ctx, prefs)
}

func (f *fakeRecommender) GenerateItinerary(ctx context.Context, destinations []response_models.SuggestedDestination, prefs request_models.TripPreferences) ([]response_models.GeneratedItem, error) {
	return f.itinFn(ctx, destinations, prefs)
}

func (f *fakeRecommender) RecommendPlaces(ctx context.Context, query string) ([]response_models.PlaceRecommendation, error) {
	return f.placesFn(ctx, query)
}

type fakeImages struct{}

func (fakeImages) ContextualImage(query, kind string) string {
	return "img://" + query + "/" + kind
}

func newLoadedTripService(t *testing.T, repo *fakeTripRepo) TripServiceInterface {
	t.Helper()
	svc := NewTripService(repo)
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func sampleSuggestions() []response_models.SuggestedDestination {
	return []response_models.SuggestedDestination{
		{ID: 0, Name: "파리", Country: "프랑스", Description: "d", MatchReason: "r", Theme: "로맨틱"},
		{ID: 1, Name: "도쿄", Country: "일본", Description: "d", MatchReason: "r", Theme: "미식"},
		{ID: 2, Name: "로마", Country: "이탈리아", Description: "d", MatchReason: "r", Theme: "역사"},
	}
}

func samplePlaces() []response_models.PlaceRecommendation {
	return []response_models.PlaceRecommendation{
		{Name: "우동 신", OriginalName: "Udon Shin", Type: "dining", Rating: 4.8, Price: "₩₩", Location: "신주쿠", Menu: []string{"붓카케 우동"}},
		{Name: "시부야 스카이", OriginalName: "Shibuya Sky", Type: "activity", Rating: 4.7, Price: "₩₩₩", Location: "시부야"},
		{Name: "츠타야 서점", OriginalName: "Tsutaya Books", Type: "activity", Rating: 4.4, Price: "무료", Location: "다이칸야마"},
	}
}
