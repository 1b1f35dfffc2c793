package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"wanderlust/internal/models/db_models"
)

const (
	tripsKey      = "wanderlust:trips"
	lastTripIDKey = "wanderlust:last_trip_id"
)

// TripRepository is the pure persistence boundary: two keyed records, the
// serialized trip collection and the last-selected trip id. No business
// logic lives here.
type TripRepository interface {
	LoadTrips(ctx context.Context) ([]db_models.Trip, error)
	SaveTrips(ctx context.Context, trips []db_models.Trip) error
	LoadLastTripID(ctx context.Context) (string, error)
	SaveLastTripID(ctx context.Context, tripID string) error
}

type redisTripRepository struct {
	client *redis.Client
}

func NewTripRepository(client *redis.Client) TripRepository {
	return &redisTripRepository{client: client}
}

// LoadTrips returns nil (not an error) when nothing has been stored yet.
func (r *redisTripRepository) LoadTrips(ctx context.Context) ([]db_models.Trip, error) {
	raw, err := r.client.Get(ctx, tripsKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load trips: %w", err)
	}

	var trips []db_models.Trip
	if err := json.Unmarshal([]byte(raw), &trips); err != nil {
		return nil, fmt.Errorf("decode trips: %w", err)
	}
	return trips, nil
}

func (r *redisTripRepository) SaveTrips(ctx context.Context, trips []db_models.Trip) error {
	raw, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("encode trips: %w", err)
	}
	if err := r.client.Set(ctx, tripsKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("save trips: %w", err)
	}
	return nil
}

func (r *redisTripRepository) LoadLastTripID(ctx context.Context) (string, error) {
	id, err := r.client.Get(ctx, lastTripIDKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load last trip id: %w", err)
	}
	return id, nil
}

func (r *redisTripRepository) SaveLastTripID(ctx context.Context, tripID string) error {
	if err := r.client.Set(ctx, lastTripIDKey, tripID, 0).Err(); err != nil {
		return fmt.Errorf("save last trip id: %w", err)
	}
	return nil
}
