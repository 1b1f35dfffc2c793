package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"wanderlust/internal/models/db_models"
	"wanderlust/internal/models/request_models"
	"wanderlust/internal/models/response_models"
	"wanderlust/internal/recommend"
	"wanderlust/pkg/utils"
)

const (
	CurationModeAdd     = "add"
	CurationModeReplace = "replace"

	// timeUnset is the display time of items added without a schedule slot.
	timeUnset = "시간 미정"
)

type CurationServiceInterface interface {
	// Open creates a curation session on a trip and day. With a target item
	// the session is in replace mode and the first search runs immediately
	// with a query derived from the target.
	Open(ctx context.Context, req request_models.OpenCurationRequest) (response_models.CurationStateResponse, error)

	GetState(sessionID string) (response_models.CurationStateResponse, error)
	Search(ctx context.Context, sessionID, query string) (response_models.CurationStateResponse, error)
	ToggleSelection(sessionID string, index int) (response_models.CurationStateResponse, error)
	SelectDay(sessionID string, day int) (response_models.CurationStateResponse, error)
	NextDay(sessionID string) (response_models.CurationStateResponse, error)

	// Confirm merges the selected candidates into the trip and closes the
	// session. With nothing selected it is a no-op guard: the session stays
	// open and the trip is returned unchanged.
	Confirm(sessionID string) (db_models.Trip, error)

	Close(sessionID string)
}

type curationSession struct {
	id              string
	tripID          string
	day             int
	target          *db_models.ItineraryItem
	query           string
	recommendations []response_models.PlaceRecommendation
	selected        map[int]bool
	seq             uint64
}

func (c *curationSession) replaceMode() bool { return c.target != nil }

type CurationService struct {
	mu       sync.Mutex
	sessions map[string]*curationSession

	recommender recommend.Recommender
	images      utils.ImageService
	tripService TripServiceInterface
}

func NewCurationService(recommender recommend.Recommender, images utils.ImageService, tripService TripServiceInterface) CurationServiceInterface {
	return &CurationService{
		sessions:    make(map[string]*curationSession),
		recommender: recommender,
		images:      images,
		tripService: tripService,
	}
}

func (s *CurationService) Open(ctx context.Context, req request_models.OpenCurationRequest) (response_models.CurationStateResponse, error) {
	trip, err := s.tripService.GetTrip(req.TripID)
	if err != nil {
		return response_models.CurationStateResponse{}, err
	}

	day := req.Day
	if day < 1 {
		day = 1
	}
	if max := db_models.DayCount(trip); day > max {
		day = max
	}

	sess := &curationSession{
		id:       uuid.NewString(),
		tripID:   trip.ID,
		day:      day,
		selected: make(map[int]bool),
	}

	if req.TargetItemID != "" {
		for i := range trip.Items {
			if trip.Items[i].ID == req.TargetItemID {
				target := trip.Items[i]
				sess.target = &target
				break
			}
		}
		if sess.target == nil {
			return response_models.CurationStateResponse{}, utils.ErrReplaceTargetNotFound
		}
		kind := "여행지"
		if sess.target.Type == db_models.ItemDining {
			kind = "맛집"
		}
		sess.query = fmt.Sprintf("%s 대신 갈만한 %s", sess.target.Title, kind)
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	if sess.target != nil {
		// Replace mode searches without waiting for user input.
		return s.Search(ctx, sess.id, "")
	}
	return s.snapshot(sess.id)
}

func (s *CurationService) GetState(sessionID string) (response_models.CurationStateResponse, error) {
	return s.snapshot(sessionID)
}

func (s *CurationService) Search(ctx context.Context, sessionID, query string) (response_models.CurationStateResponse, error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return response_models.CurationStateResponse{}, utils.ErrSessionNotFound
	}

	effective := strings.TrimSpace(query)
	if effective == "" {
		if !sess.replaceMode() {
			state := snapshotCuration(sess)
			s.mu.Unlock()
			return state, utils.ErrCurationSearchRequired
		}
		effective = recommend.ReplaceQuery(sess.target.Title, string(sess.target.Type))
	} else {
		sess.query = effective
	}
	sess.recommendations = nil
	sess.selected = make(map[int]bool)
	sess.seq++
	seq := sess.seq
	s.mu.Unlock()

	recs, err := s.recommender.RecommendPlaces(ctx, effective)

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok = s.sessions[sessionID]
	if !ok {
		// Dialog closed while the request was pending; drop the response.
		return response_models.CurationStateResponse{}, utils.ErrSessionNotFound
	}
	if sess.seq != seq {
		// A newer search superseded this one.
		return snapshotCuration(sess), nil
	}
	if err != nil {
		log.Printf("Place recommendation failed for session %s: %v", sessionID, err)
		return snapshotCuration(sess), fmt.Errorf("%w: %v", utils.ErrRecommendationFailed, err)
	}

	for i := range recs {
		recs[i].Image = s.images.ContextualImage(recs[i].Name, recs[i].Type)
		recs[i].MapURL = utils.MapsSearchURL(recs[i].Location)
	}
	sess.recommendations = recs
	return snapshotCuration(sess), nil
}

func (s *CurationService) ToggleSelection(sessionID string, index int) (response_models.CurationStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return response_models.CurationStateResponse{}, utils.ErrSessionNotFound
	}
	if index < 0 || index >= len(sess.recommendations) {
		return snapshotCuration(sess), utils.ErrInvalidInput
	}

	if sess.replaceMode() {
		// Single-select: picking a new index clears the previous one,
		// picking the selected index deselects it.
		wasSelected := sess.selected[index]
		sess.selected = make(map[int]bool)
		if !wasSelected {
			sess.selected[index] = true
		}
	} else if sess.selected[index] {
		delete(sess.selected, index)
	} else {
		sess.selected[index] = true
	}
	return snapshotCuration(sess), nil
}

func (s *CurationService) SelectDay(sessionID string, day int) (response_models.CurationStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return response_models.CurationStateResponse{}, utils.ErrSessionNotFound
	}

	trip, err := s.tripService.GetTrip(sess.tripID)
	if err != nil {
		return response_models.CurationStateResponse{}, err
	}
	if day < 1 || day > db_models.DayCount(trip) {
		return snapshotCuration(sess), utils.ErrInvalidInput
	}
	sess.day = day
	return snapshotCuration(sess), nil
}

// NextDay moves forward one day, clamped to the last existing day; it never
// creates days.
func (s *CurationService) NextDay(sessionID string) (response_models.CurationStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return response_models.CurationStateResponse{}, utils.ErrSessionNotFound
	}

	trip, err := s.tripService.GetTrip(sess.tripID)
	if err != nil {
		return response_models.CurationStateResponse{}, err
	}
	if sess.day < db_models.DayCount(trip) {
		sess.day++
	}
	return snapshotCuration(sess), nil
}

func (s *CurationService) Confirm(sessionID string) (db_models.Trip, error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return db_models.Trip{}, utils.ErrSessionNotFound
	}

	trip, err := s.tripService.GetTrip(sess.tripID)
	if err != nil {
		s.mu.Unlock()
		return db_models.Trip{}, err
	}

	indices := make([]int, 0, len(sess.selected))
	for idx := range sess.selected {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	if len(indices) == 0 {
		// Confirmation with nothing selected is disabled in the UI; treat
		// it as a guard, not an error.
		s.mu.Unlock()
		return trip, nil
	}

	if sess.replaceMode() {
		rec := sess.recommendations[indices[0]]
		newItem := recommend.ConvertPlace(rec, sess.day, sess.target.Time, s.images)
		updated, replaced := db_models.ReplaceItem(trip, sess.target.ID, newItem)
		if !replaced {
			s.mu.Unlock()
			return db_models.Trip{}, utils.ErrReplaceTargetNotFound
		}
		trip = updated
	} else {
		newItems := make([]db_models.ItineraryItem, 0, len(indices))
		for _, idx := range indices {
			newItems = append(newItems, recommend.ConvertPlace(sess.recommendations[idx], sess.day, timeUnset, s.images))
		}
		trip = db_models.AppendItems(trip, newItems)
	}

	delete(s.sessions, sessionID)
	s.mu.Unlock()

	if err := s.tripService.UpdateTrip(trip); err != nil {
		return db_models.Trip{}, err
	}
	return trip, nil
}

func (s *CurationService) Close(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

func (s *CurationService) snapshot(sessionID string) (response_models.CurationStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return response_models.CurationStateResponse{}, utils.ErrSessionNotFound
	}
	return snapshotCuration(sess), nil
}

func snapshotCuration(sess *curationSession) response_models.CurationStateResponse {
	indices := make([]int, 0, len(sess.selected))
	for idx := range sess.selected {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	recs := make([]response_models.PlaceRecommendation, len(sess.recommendations))
	copy(recs, sess.recommendations)

	mode := CurationModeAdd
	var target *db_models.ItineraryItem
	if sess.target != nil {
		mode = CurationModeReplace
		t := *sess.target
		target = &t
	}

	return response_models.CurationStateResponse{
		SessionID:       sess.id,
		TripID:          sess.tripID,
		Mode:            mode,
		Day:             sess.day,
		Query:           sess.query,
		Recommendations: recs,
		SelectedIndices: indices,
		Target:          target,
	}
}
