package recommend

import (
	"encoding/json"
	"fmt"
	"strings"

	"wanderlust/internal/models/db_models"
	"wanderlust/internal/models/response_models"
)

// defaultRating is applied when the service omits a rating.
const defaultRating = 4.5

// parseDestinations validates the destination-candidate payload. Records
// missing any required field are dropped; survivors get 0-based positional
// ids. A payload that cannot be parsed at all is an error, an empty result
// is not.
func parseDestinations(raw string) ([]response_models.SuggestedDestination, error) {
	var records []response_models.SuggestedDestination
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &records); err != nil {
		return nil, fmt.Errorf("destination payload: %w", err)
	}

	out := make([]response_models.SuggestedDestination, 0, len(records))
	for _, r := range records {
		if r.Name == "" || r.Country == "" || r.Description == "" || r.MatchReason == "" || r.Theme == "" {
			continue
		}
		r.ID = len(out)
		out = append(out, r)
	}
	return out, nil
}

func parseGeneratedItems(raw string) ([]response_models.GeneratedItem, error) {
	var records []response_models.GeneratedItem
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &records); err != nil {
		return nil, fmt.Errorf("itinerary payload: %w", err)
	}

	out := make([]response_models.GeneratedItem, 0, len(records))
	for _, r := range records {
		if r.Day < 1 || r.Time == "" || r.Title == "" || r.Location == "" {
			continue
		}
		if !db_models.ItemType(r.Type).Valid() {
			continue
		}
		if r.Rating == 0 {
			r.Rating = defaultRating
		}
		out = append(out, r)
	}
	return out, nil
}

func parsePlaces(raw string) ([]response_models.PlaceRecommendation, error) {
	var records []response_models.PlaceRecommendation
	if err := json.Unmarshal([]byte(cleanJSONResponse(raw)), &records); err != nil {
		return nil, fmt.Errorf("place payload: %w", err)
	}

	out := make([]response_models.PlaceRecommendation, 0, len(records))
	for _, r := range records {
		if r.Name == "" || r.OriginalName == "" || r.Price == "" || r.Location == "" {
			continue
		}
		if r.Type != string(db_models.ItemActivity) && r.Type != string(db_models.ItemDining) {
			continue
		}
		if r.Rating == 0 {
			r.Rating = defaultRating
		}
		out = append(out, r)
	}
	return out, nil
}

// cleanJSONResponse strips markdown fences and any prose around the first
// JSON value. Models occasionally wrap their output even when asked for
// bare JSON.
func cleanJSONResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```JSON", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	objStart := strings.Index(response, "{")
	arrStart := strings.Index(response, "[")

	start, open, close := -1, byte('{'), byte('}')
	if arrStart != -1 && (objStart == -1 || arrStart < objStart) {
		start, open, close = arrStart, '[', ']'
	} else if objStart != -1 {
		start = objStart
	}
	if start == -1 {
		return response
	}
	if end := matchingDelimiter(response, start, open, close); end != -1 {
		return response[start : end+1]
	}
	return strings.TrimSpace(response[start:])
}

// matchingDelimiter finds the closing delimiter for the opener at start,
// skipping string literals and escapes.
func matchingDelimiter(s string, start int, open, close byte) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		ch := s[i]
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch ch {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
