package recommend

import (
	"fmt"

	"wanderlust/internal/models/db_models"
	"wanderlust/internal/models/response_models"
	"wanderlust/pkg/utils"
)

// ConvertGeneratedItems turns validated itinerary records into owned
// ItineraryItems: fresh ids, canonical sort keys and per-item image lookups.
// Image lookups are independent and never fail a candidate.
func ConvertGeneratedItems(records []response_models.GeneratedItem, images utils.ImageService) []db_models.ItineraryItem {
	items := make([]db_models.ItineraryItem, 0, len(records))
	for _, r := range records {
		items = append(items, db_models.ItineraryItem{
			ID:          db_models.NewItemID(),
			Day:         r.Day,
			Time:        r.Time,
			TimeSort:    db_models.TimeSortKey(r.Time),
			Title:       r.Title,
			Location:    r.Location,
			Description: r.Description,
			Type:        db_models.ItemType(r.Type),
			Rating:      r.Rating,
			Price:       r.Price,
			IsHotPlace:  r.IsHotPlace,
			Image:       images.ContextualImage(r.Title, r.Type),
		})
	}
	return items
}

// ConvertPlace turns one accepted curation candidate into an ItineraryItem
// bound to day with the given display time ("시간 미정" in add mode, the
// replaced item's slot in replace mode).
func ConvertPlace(rec response_models.PlaceRecommendation, day int, timeDisplay string, images utils.ImageService) db_models.ItineraryItem {
	return db_models.ItineraryItem{
		ID:          db_models.NewItemID(),
		Day:         day,
		Time:        timeDisplay,
		TimeSort:    db_models.TimeSortKey(timeDisplay),
		Title:       fmt.Sprintf("%s (%s)", rec.Name, rec.OriginalName),
		Location:    rec.Location,
		Description: rec.Description,
		Type:        db_models.ItemType(rec.Type),
		Rating:      rec.Rating,
		Price:       rec.Price,
		IsHotPlace:  rec.IsHotPlace,
		Image:       images.ContextualImage(rec.Name, rec.Type),
	}
}
