package db_models

import (
	"github.com/google/uuid"
)

type TripStatus string

const (
	StatusUpcoming   TripStatus = "upcoming"
	StatusPast       TripStatus = "past"
	StatusDraft      TripStatus = "draft"
	StatusInProgress TripStatus = "in-progress"
)

type ItemType string

const (
	ItemActivity ItemType = "activity"
	ItemDining   ItemType = "dining"
	ItemHotel    ItemType = "hotel"
	ItemGolf     ItemType = "golf"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemActivity, ItemDining, ItemHotel, ItemGolf:
		return true
	}
	return false
}

// ItineraryItem is a single scheduled stop within a trip.
// Time is the display string; TimeSort is the canonical minutes-since-midnight
// value computed at ingestion and used for ordering within a day.
type ItineraryItem struct {
	ID          string   `json:"id"`
	Day         int      `json:"day"`
	Time        string   `json:"time"`
	TimeSort    int      `json:"timeSort"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Description string   `json:"description,omitempty"`
	Type        ItemType `json:"type"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating,omitempty"`
	Price       string   `json:"price,omitempty"`
	IsHotPlace  bool     `json:"isHotPlace,omitempty"`
}

type Trip struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Subtitle         string          `json:"subtitle"`
	Status           TripStatus      `json:"status"`
	Image            string          `json:"image"`
	SavedPlacesCount int             `json:"savedPlacesCount"`
	Items            []ItineraryItem `json:"items"`
}

func NewTripID() string {
	return "trip-" + uuid.NewString()
}

func NewItemID() string {
	return uuid.NewString()
}
