package services

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust/internal/models/db_models"
	"wanderlust/internal/models/request_models"
	"wanderlust/internal/models/response_models"
	"wanderlust/pkg/utils"
)

func newWizardUnderTest(t *testing.T, rec *fakeRecommender) (WizardServiceInterface, TripServiceInterface) {
	t.Helper()
	trips := newLoadedTripService(t, &fakeTripRepo{})
	return NewWizardService(rec, fakeImages{}, trips), trips
}

func TestWizard_StartSession_Defaults(t *testing.T) {
	svc, _ := newWizardUnderTest(t, &fakeRecommender{})

	state := svc.StartSession()
	assert.NotEmpty(t, state.SessionID)
	assert.Equal(t, 1, state.Step)
	assert.Equal(t, "5박 6일", state.Preferences.Duration)
	assert.Equal(t, "2명", state.Preferences.Travelers)
	assert.Equal(t, "Standard", state.Preferences.Budget)
	assert.True(t, state.Preferences.IsRentalCar)
	assert.Empty(t, state.Suggestions)
	assert.Empty(t, state.SelectedIDs)
}

func TestWizard_FullFlow(t *testing.T) {
	rec := &fakeRecommender{
		suggestFn: func(ctx context.Context, prefs request_models.TripPreferences) ([]response_models.SuggestedDestination, error) {
			return sampleSuggestions(), nil
		},
		itinFn: func(ctx context.Context, destinations []response_models.SuggestedDestination, prefs request_models.TripPreferences) ([]response_models.GeneratedItem, error) {
			require.Len(t, destinations, 2)
			assert.Equal(t, "파리", destinations[0].Name)
			assert.Equal(t, "로마", destinations[1].Name)
			return []response_models.GeneratedItem{
				{Day: 1, Time: "09:00 AM", Title: "루브르 박물관", Location: "파리", Type: "activity", Rating: 4.7},
				{Day: 2, Time: "12:00 PM", Title: "콜로세움", Location: "로마", Type: "activity", Rating: 4.8},
			}, nil
		},
	}
	svc, trips := newWizardUnderTest(t, rec)

	state := svc.StartSession()
	prefs := request_models.TripPreferences{
		DestinationQuery: "미식 여행",
		Duration:         "3박 4일",
		Travelers:        "2명",
		Budget:           "Luxury",
		HotelTier:        "5성급 (럭셔리)",
		Interests:        []string{"미식"},
	}

	state, err := svc.SubmitPreferences(context.Background(), state.SessionID, prefs)
	require.NoError(t, err)
	assert.Equal(t, 2, state.Step)
	require.Len(t, state.Suggestions, 3)
	assert.Contains(t, state.Suggestions[0].Image, "img://파리")

	state, err = svc.ToggleDestination(state.SessionID, 0)
	require.NoError(t, err)
	state, err = svc.ToggleDestination(state.SessionID, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, state.SelectedIDs)

	trip, err := svc.Generate(context.Background(), state.SessionID)
	require.NoError(t, err)
	require.NotNil(t, trip)

	assert.Equal(t, "파리 외 1곳 여행", trip.Title)
	assert.Equal(t, "3박 4일 • 2명 • Luxury • 5성급 (럭셔리)", trip.Subtitle)
	assert.Equal(t, "upcoming", string(trip.Status))
	assert.Equal(t, 2, trip.SavedPlacesCount)
	require.Len(t, trip.Items, 2)
	assert.NotEmpty(t, trip.Items[0].ID)
	assert.Equal(t, 540, trip.Items[0].TimeSort)

	// The new trip is stored and selected.
	assert.Equal(t, trip.ID, trips.SelectedTripID())
	stored := trips.ListTrips()
	assert.Equal(t, trip.ID, stored[0].ID)

	// The session is gone after a successful generation.
	_, err = svc.GetState(state.SessionID)
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestWizard_SingleDestinationTitle(t *testing.T) {
	rec := &fakeRecommender{
		suggestFn: func(ctx context.Context, prefs request_models.TripPreferences) ([]response_models.SuggestedDestination, error) {
			return sampleSuggestions(), nil
		},
		itinFn: func(ctx context.Context, destinations []response_models.SuggestedDestination, prefs request_models.TripPreferences) ([]response_models.GeneratedItem, error) {
			return []response_models.GeneratedItem{
				{Day: 1, Time: "10:00 AM", Title: "시부야", Location: "도쿄", Type: "activity"},
			}, nil
		},
	}
	svc, _ := newWizardUnderTest(t, rec)

	state := svc.StartSession()
	state, err := svc.SubmitPreferences(context.Background(), state.SessionID, state.Preferences)
	require.NoError(t, err)
	_, err = svc.ToggleDestination(state.SessionID, 1)
	require.NoError(t, err)

	trip, err := svc.Generate(context.Background(), state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "도쿄 여행", trip.Title)
}

func TestWizard_SubmitFailureKeepsState(t *testing.T) {
	fail := true
	rec := &fakeRecommender{
		suggestFn: func(ctx context.Context, prefs request_models.TripPreferences) ([]response_models.SuggestedDestination, error) {
			if fail {
				return nil, assert.AnError
			}
			return sampleSuggestions(), nil
		},
	}
	svc, _ := newWizardUnderTest(t, rec)

	start := svc.StartSession()
	prefs := start.Preferences
	prefs.DestinationQuery = "한적한 바닷가"

	state, err := svc.SubmitPreferences(context.Background(), start.SessionID, prefs)
	require.ErrorIs(t, err, utils.ErrRecommendationFailed)

	// Still on step 1 with the submitted preferences intact.
	assert.Equal(t, 1, state.Step)
	assert.Equal(t, "한적한 바닷가", state.Preferences.DestinationQuery)
	assert.Empty(t, state.Suggestions)

	// A retry on the same session succeeds.
	fail = false
	state, err = svc.SubmitPreferences(context.Background(), start.SessionID, prefs)
	require.NoError(t, err)
	assert.Equal(t, 2, state.Step)
	assert.Len(t, state.Suggestions, 3)
}

func TestWizard_SubmitEmptySuggestions(t *testing.T) {
	rec := &fakeRecommender{
		suggestFn: func(ctx context.Context, prefs request_models.TripPreferences) ([]response_models.SuggestedDestination, error) {
			return nil, nil
		},
	}
	svc, _ := newWizardUnderTest(t, rec)

	start := svc.StartSession()
	state, err := svc.SubmitPreferences(context.Background(), start.SessionID, start.Preferences)
	require.ErrorIs(t, err, utils.ErrEmptyRecommendation)
	assert.Equal(t, 1, state.Step)
}

func TestWizard_ToggleDestination(t *testing.T) {
	rec := &fakeRecommender{
		suggestFn: func(ctx context.Context, prefs request_models.TripPreferences) ([]response_models.SuggestedDestination, error) {
			return sampleSuggestions(), nil
		},
	}
	svc, _ := newWizardUnderTest(t, rec)

	start := svc.StartSession()
	state, err := svc.SubmitPreferences(context.Background(), start.SessionID, start.Preferences)
	require.NoError(t, err)

	state, err = svc.ToggleDestination(state.SessionID, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, state.SelectedIDs)

	// Toggling again deselects.
	state, err = svc.ToggleDestination(state.SessionID, 1)
	require.NoError(t, err)
	assert.Empty(t, state.SelectedIDs)

	_, err = svc.ToggleDestination(state.SessionID, 3)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	_, err = svc.ToggleDestination(state.SessionID, -1)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestWizard_ToggleOnStepOneRejected(t *testing.T) {
	svc, _ := newWizardUnderTest(t, &fakeRecommender{})

	start := svc.StartSession()
	_, err := svc.ToggleDestination(start.SessionID, 0)
	assert.ErrorIs(t, err, utils.ErrWizardStepNotAllowed)
}

func TestWizard_BackKeepsSuggestionsAndSelection(t *testing.T) {
	rec := &fakeRecommender{
		suggestFn: func(ctx context.Context, prefs request_models.TripPreferences) ([]response_models.SuggestedDestination, error) {
			return sampleSuggestions(), nil
		},
	}
	svc, _ := newWizardUnderTest(t, rec)

	start := svc.StartSession()
	state, err := svc.SubmitPreferences(context.Background(), start.SessionID, start.Preferences)
	require.NoError(t, err)
	state, err = svc.ToggleDestination(state.SessionID, 0)
	require.NoError(t, err)

	state, err = svc.Back(state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, state.Step)
	assert.Len(t, state.Suggestions, 3)
	assert.Equal(t, []int{0}, state.SelectedIDs)

	// Resubmitting replaces the candidate list and clears the selection.
	state, err = svc.SubmitPreferences(context.Background(), state.SessionID, state.Preferences)
	require.NoError(t, err)
	assert.Equal(t, 2, state.Step)
	assert.Empty(t, state.SelectedIDs)
}

func TestWizard_GenerateRequiresSelection(t *testing.T) {
	rec := &fakeRecommender{
		suggestFn: func(ctx context.Context, prefs request_models.TripPreferences) ([]response_models.SuggestedDestination, error) {
			return sampleSuggestions(), nil
		},
	}
	svc, _ := newWizardUnderTest(t, rec)

	start := svc.StartSession()
	state, err := svc.SubmitPreferences(context.Background(), start.SessionID, start.Preferences)
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), state.SessionID)
	assert.ErrorIs(t, err, utils.ErrNoDestinationSelected)

	// The session survives the rejected attempt.
	got, err := svc.GetState(state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Step)
}

func TestWizard_CancelDropsInFlightResponse(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	rec := &fakeRecommender{
		suggestFn: func(ctx context.Context, prefs request_models.TripPreferences) ([]response_models.SuggestedDestination, error) {
			close(entered)
			<-release
			return sampleSuggestions(), nil
		},
	}
	svc, _ := newWizardUnderTest(t, rec)
	start := svc.StartSession()

	done := make(chan error, 1)
	go func() {
		_, err := svc.SubmitPreferences(context.Background(), start.SessionID, start.Preferences)
		done <- err
	}()

	<-entered
	svc.Cancel(start.SessionID)
	close(release)

	assert.ErrorIs(t, <-done, utils.ErrSessionNotFound)
	_, err := svc.GetState(start.SessionID)
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestWizard_NewerSubmissionWins(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	first := true
	rec := &fakeRecommender{
		suggestFn: func(ctx context.Context, prefs request_models.TripPreferences) ([]response_models.SuggestedDestination, error) {
			if first {
				first = false
				close(entered)
				<-release
				return []response_models.SuggestedDestination{
					{Name: "낡은 결과", Country: "c", Description: "d", MatchReason: "r", Theme: "t"},
				}, nil
			}
			return sampleSuggestions(), nil
		},
	}
	svc, _ := newWizardUnderTest(t, rec)
	start := svc.StartSession()

	done := make(chan response_models.WizardStateResponse, 1)
	go func() {
		state, _ := svc.SubmitPreferences(context.Background(), start.SessionID, start.Preferences)
		done <- state
	}()

	<-entered

	// The session is still on step 1 while the first request is pending, so
	// a second submission is legal and supersedes the first.
	state, err := svc.SubmitPreferences(context.Background(), start.SessionID, start.Preferences)
	require.NoError(t, err)
	require.Len(t, state.Suggestions, 3)

	close(release)
	stale := <-done

	// The stale response is discarded; the session keeps the newer list.
	require.Len(t, stale.Suggestions, 3)
	assert.Equal(t, "파리", stale.Suggestions[0].Name)

	got, err := svc.GetState(start.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "파리", got.Suggestions[0].Name)
}

func TestWizard_SupersededGenerateIsSilent(t *testing.T) {
	entered1 := make(chan struct{})
	entered2 := make(chan struct{})
	release1 := make(chan struct{})
	release2 := make(chan struct{})
	var calls atomic.Int32
	rec := &fakeRecommender{
		suggestFn: func(ctx context.Context, prefs request_models.TripPreferences) ([]response_models.SuggestedDestination, error) {
			return sampleSuggestions(), nil
		},
		itinFn: func(ctx context.Context, destinations []response_models.SuggestedDestination, prefs request_models.TripPreferences) ([]response_models.GeneratedItem, error) {
			if calls.Add(1) == 1 {
				close(entered1)
				<-release1
				return []response_models.GeneratedItem{
					{Day: 1, Time: "08:00 AM", Title: "낡은 일정", Location: "어딘가", Type: "activity"},
				}, nil
			}
			close(entered2)
			<-release2
			return []response_models.GeneratedItem{
				{Day: 1, Time: "09:00 AM", Title: "루브르 박물관", Location: "파리", Type: "activity"},
			}, nil
		},
	}
	svc, _ := newWizardUnderTest(t, rec)

	start := svc.StartSession()
	state, err := svc.SubmitPreferences(context.Background(), start.SessionID, start.Preferences)
	require.NoError(t, err)
	_, err = svc.ToggleDestination(state.SessionID, 0)
	require.NoError(t, err)

	type result struct {
		trip *db_models.Trip
		err  error
	}
	done1 := make(chan result, 1)
	go func() {
		trip, err := svc.Generate(context.Background(), state.SessionID)
		done1 <- result{trip, err}
	}()
	<-entered1

	done2 := make(chan result, 1)
	go func() {
		trip, err := svc.Generate(context.Background(), state.SessionID)
		done2 <- result{trip, err}
	}()
	<-entered2

	// The older request resolves while the newer one is still pending: it is
	// dropped without error and without touching the session.
	close(release1)
	stale := <-done1
	require.NoError(t, stale.err)
	assert.Nil(t, stale.trip)

	got, err := svc.GetState(state.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Step)

	// The newer request delivers the trip and closes the session.
	close(release2)
	fresh := <-done2
	require.NoError(t, fresh.err)
	require.NotNil(t, fresh.trip)
	assert.Equal(t, "루브르 박물관", fresh.trip.Items[0].Title)

	_, err = svc.GetState(state.SessionID)
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestWizard_SessionNotFound(t *testing.T) {
	svc, _ := newWizardUnderTest(t, &fakeRecommender{})

	_, err := svc.GetState("missing")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
	_, err = svc.SubmitPreferences(context.Background(), "missing", request_models.TripPreferences{})
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
	_, err = svc.Generate(context.Background(), "missing")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}
