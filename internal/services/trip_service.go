package services

import (
	"context"
	"log"
	"sync"

	"wanderlust/internal/models/db_models"
	"wanderlust/internal/models/response_models"
	"wanderlust/internal/repositories"
	"wanderlust/pkg/utils"
)

type TripServiceInterface interface {
	// Load reads the persisted collection and last-selected id once, at
	// startup, seeding the sample trips when the store is empty.
	Load(ctx context.Context) error

	ListTrips() []db_models.Trip
	GetTrip(tripID string) (db_models.Trip, error)
	SelectedTripID() string
	SelectTrip(tripID string) error

	// InsertTrip prepends a new trip and makes it the selected one.
	InsertTrip(trip db_models.Trip)
	// UpdateTrip swaps the whole trip matching its id into the collection.
	UpdateTrip(trip db_models.Trip) error

	// DayView is the day-scoped itinerary view used by the curation UI.
	DayView(tripID string, day int) (response_models.DayViewResponse, error)
}

// TripService owns the process-wide trip collection. All mutations replace
// whole values under the lock; persistence is notified after each successful
// mutation, fire-and-forget.
type TripService struct {
	mu             sync.RWMutex
	trips          []db_models.Trip
	selectedTripID string

	repo repositories.TripRepository
}

func NewTripService(repo repositories.TripRepository) TripServiceInterface {
	return &TripService{repo: repo}
}

func (s *TripService) Load(ctx context.Context) error {
	trips, err := s.repo.LoadTrips(ctx)
	if err != nil {
		return utils.ErrPersistenceUnavailable
	}
	lastID, err := s.repo.LoadLastTripID(ctx)
	if err != nil {
		return utils.ErrPersistenceUnavailable
	}

	seeded := false
	if len(trips) == 0 {
		trips = db_models.SeedTrips()
		seeded = true
	}
	if lastID == "" {
		lastID = trips[0].ID
	}

	s.mu.Lock()
	s.trips = trips
	s.selectedTripID = lastID
	s.mu.Unlock()

	if seeded {
		s.persistTrips()
		s.persistLastTripID()
	}
	log.Printf("Trip store loaded: %d trips, selected %s", len(trips), lastID)
	return nil
}

func (s *TripService) ListTrips() []db_models.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]db_models.Trip, len(s.trips))
	copy(out, s.trips)
	return out
}

func (s *TripService) GetTrip(tripID string) (db_models.Trip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.trips {
		if t.ID == tripID {
			return t, nil
		}
	}
	return db_models.Trip{}, utils.ErrTripNotFound
}

func (s *TripService) SelectedTripID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedTripID
}

func (s *TripService) SelectTrip(tripID string) error {
	s.mu.Lock()
	found := false
	for _, t := range s.trips {
		if t.ID == tripID {
			found = true
			break
		}
	}
	if found {
		s.selectedTripID = tripID
	}
	s.mu.Unlock()

	if !found {
		return utils.ErrTripNotFound
	}
	s.persistLastTripID()
	return nil
}

func (s *TripService) InsertTrip(trip db_models.Trip) {
	trip.SavedPlacesCount = len(trip.Items)

	s.mu.Lock()
	trips := make([]db_models.Trip, 0, len(s.trips)+1)
	trips = append(trips, trip)
	trips = append(trips, s.trips...)
	s.trips = trips
	s.selectedTripID = trip.ID
	s.mu.Unlock()

	s.persistTrips()
	s.persistLastTripID()
}

func (s *TripService) UpdateTrip(trip db_models.Trip) error {
	// The count is derived from the items; never trust the caller's value.
	trip.SavedPlacesCount = len(trip.Items)

	s.mu.Lock()
	found := false
	trips := make([]db_models.Trip, len(s.trips))
	for i, t := range s.trips {
		if t.ID == trip.ID {
			trips[i] = trip
			found = true
		} else {
			trips[i] = t
		}
	}
	if found {
		s.trips = trips
	}
	s.mu.Unlock()

	if !found {
		return utils.ErrTripNotFound
	}
	s.persistTrips()
	return nil
}

func (s *TripService) DayView(tripID string, day int) (response_models.DayViewResponse, error) {
	trip, err := s.GetTrip(tripID)
	if err != nil {
		return response_models.DayViewResponse{}, err
	}

	dayCount := db_models.DayCount(trip)
	if day < 1 || day > dayCount {
		return response_models.DayViewResponse{}, utils.ErrInvalidInput
	}

	items := db_models.ItemsForDay(trip, day)
	view := make([]response_models.DayViewItem, 0, len(items))
	for _, item := range items {
		view = append(view, response_models.DayViewItem{
			ItineraryItem: item,
			MapURL:        utils.MapsSearchURL(item.Location),
		})
	}

	return response_models.DayViewResponse{
		TripID:   trip.ID,
		Day:      day,
		DayCount: dayCount,
		Items:    view,
	}, nil
}

// persistTrips and persistLastTripID snapshot under the read lock and write
// to the store in the background; a failed write only logs, the in-memory
// value stays authoritative and the next mutation retries the key.
func (s *TripService) persistTrips() {
	s.mu.RLock()
	snapshot := make([]db_models.Trip, len(s.trips))
	copy(snapshot, s.trips)
	s.mu.RUnlock()

	go func() {
		if err := s.repo.SaveTrips(context.Background(), snapshot); err != nil {
			log.Printf("Error persisting trips: %v", err)
		}
	}()
}

func (s *TripService) persistLastTripID() {
	s.mu.RLock()
	id := s.selectedTripID
	s.mu.RUnlock()

	go func() {
		if err := s.repo.SaveLastTripID(context.Background(), id); err != nil {
			log.Printf("Error persisting last trip id: %v", err)
		}
	}()
}
