package db_models

import (
	"sort"
	"strings"
	"time"
)

// UnscheduledSortKey places items without a parseable time ("시간 미정" and
// friends) after every scheduled item of the day.
const UnscheduledSortKey = 24 * 60

var timeLayouts = []string{"03:04 PM", "3:04 PM", "15:04"}

// TimeSortKey converts a display time string into minutes since midnight.
// Display formatting is left alone; only ordering relies on this value.
func TimeSortKey(display string) int {
	s := strings.TrimSpace(display)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*60 + t.Minute()
		}
	}
	return UnscheduledSortKey
}

// EffectiveDay defaults the legacy day-less items to day 1.
func EffectiveDay(item ItineraryItem) int {
	if item.Day < 1 {
		return 1
	}
	return item.Day
}

// ItemsForDay returns the items scheduled on day, ordered by their canonical
// time key, lexicographic on the display string among equals. Pure: the
// trip's own slice is never reordered.
func ItemsForDay(trip Trip, day int) []ItineraryItem {
	out := make([]ItineraryItem, 0)
	for _, item := range trip.Items {
		if EffectiveDay(item) == day {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TimeSort != out[j].TimeSort {
			return out[i].TimeSort < out[j].TimeSort
		}
		return out[i].Time < out[j].Time
	})
	return out
}

// DayCount is the number of navigable days: max(day) over all items, 1 when
// the trip has no items.
func DayCount(trip Trip) int {
	max := 1
	for _, item := range trip.Items {
		if d := EffectiveDay(item); d > max {
			max = d
		}
	}
	return max
}

// ReplaceItem swaps the item whose id matches itemID for newItem, forcing the
// replacement to keep the original id. The second return reports whether a
// matching item was found; when it is false the returned trip is unchanged.
func ReplaceItem(trip Trip, itemID string, newItem ItineraryItem) (Trip, bool) {
	replaced := false
	items := make([]ItineraryItem, len(trip.Items))
	for i, item := range trip.Items {
		if item.ID == itemID {
			newItem.ID = itemID
			items[i] = newItem
			replaced = true
		} else {
			items[i] = item
		}
	}
	if !replaced {
		return trip, false
	}
	trip.Items = items
	trip.SavedPlacesCount = len(items)
	return trip, true
}

// AppendItems concatenates newItems onto the trip's items and recomputes
// SavedPlacesCount.
func AppendItems(trip Trip, newItems []ItineraryItem) Trip {
	items := make([]ItineraryItem, 0, len(trip.Items)+len(newItems))
	items = append(items, trip.Items...)
	items = append(items, newItems...)
	trip.Items = items
	trip.SavedPlacesCount = len(items)
	return trip
}
