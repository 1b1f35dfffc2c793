package response_models

// GeneratedItem is one itinerary entry as returned by the full-trip
// generation call, before conversion into a db_models.ItineraryItem.
type GeneratedItem struct {
	Day         int     `json:"day"`
	Time        string  `json:"time"`
	Title       string  `json:"title"`
	Location    string  `json:"location"`
	Description string  `json:"description,omitempty"`
	Type        string  `json:"type"`
	Rating      float64 `json:"rating,omitempty"`
	Price       string  `json:"price,omitempty"`
	IsHotPlace  bool    `json:"isHotPlace,omitempty"`
}

// PlaceRecommendation is one curation candidate (add or replace mode).
type PlaceRecommendation struct {
	Name         string   `json:"name"`
	OriginalName string   `json:"originalName"`
	Description  string   `json:"description"`
	Type         string   `json:"type"` // activity | dining
	Rating       float64  `json:"rating"`
	IsHotPlace   bool     `json:"isHotPlace"`
	Price        string   `json:"price"`
	Menu         []string `json:"menu,omitempty"` // dining only
	Location     string   `json:"location"`
	Image        string   `json:"image,omitempty"`
	MapURL       string   `json:"map_url,omitempty"`
}
