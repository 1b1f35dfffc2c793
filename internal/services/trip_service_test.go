package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust/internal/models/db_models"
	"wanderlust/pkg/utils"
)

func TestTripService_Load_SeedsEmptyStore(t *testing.T) {
	repo := &fakeTripRepo{}
	svc := newLoadedTripService(t, repo)

	trips := svc.ListTrips()
	require.Len(t, trips, 3)
	assert.Equal(t, "paris", trips[0].ID)
	assert.Equal(t, "paris", svc.SelectedTripID())

	// The seed write is fire-and-forget.
	assert.Eventually(t, func() bool {
		return repo.savedTripCount() >= 1 && repo.savedLastID() == "paris"
	}, time.Second, 10*time.Millisecond)
}

func TestTripService_Load_KeepsExistingStore(t *testing.T) {
	repo := &fakeTripRepo{
		trips:  []db_models.Trip{{ID: "trip-x", Title: "오사카 여행"}},
		lastID: "trip-x",
	}
	svc := newLoadedTripService(t, repo)

	trips := svc.ListTrips()
	require.Len(t, trips, 1)
	assert.Equal(t, "trip-x", trips[0].ID)
	assert.Equal(t, "trip-x", svc.SelectedTripID())
}

func TestTripService_Load_DefaultsSelectionToFirstTrip(t *testing.T) {
	repo := &fakeTripRepo{
		trips: []db_models.Trip{{ID: "trip-a"}, {ID: "trip-b"}},
	}
	svc := newLoadedTripService(t, repo)
	assert.Equal(t, "trip-a", svc.SelectedTripID())
}

func TestTripService_Load_RepoFailure(t *testing.T) {
	repo := &fakeTripRepo{loadErr: assert.AnError}
	svc := NewTripService(repo)

	err := svc.Load(context.Background())
	assert.ErrorIs(t, err, utils.ErrPersistenceUnavailable)
}

func TestTripService_GetTrip(t *testing.T) {
	svc := newLoadedTripService(t, &fakeTripRepo{})

	trip, err := svc.GetTrip("paris")
	require.NoError(t, err)
	assert.Equal(t, "낭만의 파리 여행 (Romantic Paris)", trip.Title)

	_, err = svc.GetTrip("trip-nowhere")
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestTripService_SelectTrip(t *testing.T) {
	repo := &fakeTripRepo{}
	svc := newLoadedTripService(t, repo)

	require.NoError(t, svc.SelectTrip("tokyo"))
	assert.Equal(t, "tokyo", svc.SelectedTripID())
	assert.Eventually(t, func() bool {
		return repo.savedLastID() == "tokyo"
	}, time.Second, 10*time.Millisecond)

	err := svc.SelectTrip("trip-nowhere")
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
	assert.Equal(t, "tokyo", svc.SelectedTripID())
}

func TestTripService_InsertTrip_PrependsAndSelects(t *testing.T) {
	svc := newLoadedTripService(t, &fakeTripRepo{})

	svc.InsertTrip(db_models.Trip{ID: "trip-new", Title: "교토 여행"})

	trips := svc.ListTrips()
	require.Len(t, trips, 4)
	assert.Equal(t, "trip-new", trips[0].ID)
	assert.Equal(t, "trip-new", svc.SelectedTripID())
}

func TestTripService_UpdateTrip(t *testing.T) {
	svc := newLoadedTripService(t, &fakeTripRepo{})

	trip, err := svc.GetTrip("paris")
	require.NoError(t, err)
	trip.Title = "바뀐 제목"

	require.NoError(t, svc.UpdateTrip(trip))
	got, err := svc.GetTrip("paris")
	require.NoError(t, err)
	assert.Equal(t, "바뀐 제목", got.Title)

	err = svc.UpdateTrip(db_models.Trip{ID: "trip-nowhere"})
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestTripService_UpdateTrip_RecountsSavedPlaces(t *testing.T) {
	svc := newLoadedTripService(t, &fakeTripRepo{})

	trip, err := svc.GetTrip("paris")
	require.NoError(t, err)
	require.Len(t, trip.Items, 3)

	// A payload carrying a stale count must not be stored as-is.
	trip.SavedPlacesCount = 99
	require.NoError(t, svc.UpdateTrip(trip))

	got, err := svc.GetTrip("paris")
	require.NoError(t, err)
	assert.Equal(t, 3, got.SavedPlacesCount)

	trip.Items = trip.Items[:1]
	trip.SavedPlacesCount = 0
	require.NoError(t, svc.UpdateTrip(trip))

	got, err = svc.GetTrip("paris")
	require.NoError(t, err)
	assert.Equal(t, 1, got.SavedPlacesCount)
}

func TestTripService_InsertTrip_RecountsSavedPlaces(t *testing.T) {
	svc := newLoadedTripService(t, &fakeTripRepo{})

	svc.InsertTrip(db_models.Trip{
		ID:               "trip-new",
		SavedPlacesCount: 42,
		Items:            []db_models.ItineraryItem{{ID: "a", Day: 1}},
	})

	got, err := svc.GetTrip("trip-new")
	require.NoError(t, err)
	assert.Equal(t, 1, got.SavedPlacesCount)
}

func TestTripService_DayView(t *testing.T) {
	repo := &fakeTripRepo{
		trips: []db_models.Trip{{
			ID: "trip-a",
			Items: []db_models.ItineraryItem{
				{ID: "late", Day: 1, Time: "07:00 PM", TimeSort: 19 * 60, Location: "에펠탑"},
				{ID: "early", Day: 1, Time: "09:00 AM", TimeSort: 540, Location: "루브르"},
				{ID: "other", Day: 2, Time: "10:00 AM", TimeSort: 600, Location: "몽마르트"},
			},
		}},
	}
	svc := newLoadedTripService(t, repo)

	view, err := svc.DayView("trip-a", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Day)
	assert.Equal(t, 2, view.DayCount)
	require.Len(t, view.Items, 2)
	assert.Equal(t, "early", view.Items[0].ID)
	assert.Contains(t, view.Items[0].MapURL, "google.com/maps/search")

	_, err = svc.DayView("trip-a", 3)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	_, err = svc.DayView("trip-a", 0)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
