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
	wizardStepPreferences  = 1
	wizardStepDestinations = 2
)

type WizardServiceInterface interface {
	StartSession() response_models.WizardStateResponse
	GetState(sessionID string) (response_models.WizardStateResponse, error)

	// SubmitPreferences runs the destination-candidate request and, on
	// success, advances the session to step 2. On failure the session stays
	// at step 1 with the submitted preferences preserved.
	SubmitPreferences(ctx context.Context, sessionID string, prefs request_models.TripPreferences) (response_models.WizardStateResponse, error)

	ToggleDestination(sessionID string, destinationID int) (response_models.WizardStateResponse, error)
	Back(sessionID string) (response_models.WizardStateResponse, error)

	// Generate runs the itinerary request for the selected destinations and,
	// on success, builds the new trip, hands it to the trip store and closes
	// the session. On failure the session stays at step 2. A superseded call
	// returns (nil, nil); the newer request delivers the trip.
	Generate(ctx context.Context, sessionID string) (*db_models.Trip, error)

	// Cancel discards the session and everything collected in it.
	Cancel(sessionID string)
}

type wizardSession struct {
	id          string
	step        int
	preferences request_models.TripPreferences
	suggestions []response_models.SuggestedDestination
	selected    map[int]bool
	// seq identifies the newest recommendation request of this session;
	// responses carrying an older seq are discarded.
	seq uint64
}

type WizardService struct {
	mu       sync.Mutex
	sessions map[string]*wizardSession

	recommender recommend.Recommender
	images      utils.ImageService
	tripService TripServiceInterface
}

func NewWizardService(recommender recommend.Recommender, images utils.ImageService, tripService TripServiceInterface) WizardServiceInterface {
	return &WizardService{
		sessions:    make(map[string]*wizardSession),
		recommender: recommender,
		images:      images,
		tripService: tripService,
	}
}

func (s *WizardService) StartSession() response_models.WizardStateResponse {
	sess := &wizardSession{
		id:   uuid.NewString(),
		step: wizardStepPreferences,
		preferences: request_models.TripPreferences{
			Duration:    "5박 6일",
			Travelers:   "2명",
			Budget:      "Standard",
			HotelTier:   "4성급 (표준형)",
			IsRentalCar: true,
		},
		selected: make(map[int]bool),
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	return snapshotWizard(sess)
}

func (s *WizardService) GetState(sessionID string) (response_models.WizardStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return response_models.WizardStateResponse{}, utils.ErrSessionNotFound
	}
	return snapshotWizard(sess), nil
}

func (s *WizardService) SubmitPreferences(ctx context.Context, sessionID string, prefs request_models.TripPreferences) (response_models.WizardStateResponse, error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return response_models.WizardStateResponse{}, utils.ErrSessionNotFound
	}
	if sess.step != wizardStepPreferences {
		state := snapshotWizard(sess)
		s.mu.Unlock()
		return state, utils.ErrWizardStepNotAllowed
	}
	sess.preferences = prefs
	sess.seq++
	seq := sess.seq
	s.mu.Unlock()

	suggestions, err := s.recommender.SuggestDestinations(ctx, prefs)

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok = s.sessions[sessionID]
	if !ok {
		// Cancelled while the request was in flight; drop the response.
		return response_models.WizardStateResponse{}, utils.ErrSessionNotFound
	}
	if sess.seq != seq {
		// Superseded by a newer submission; last request wins.
		return snapshotWizard(sess), nil
	}
	if err != nil {
		log.Printf("Destination suggestion failed for session %s: %v", sessionID, err)
		return snapshotWizard(sess), fmt.Errorf("%w: %v", utils.ErrRecommendationFailed, err)
	}
	if len(suggestions) == 0 {
		return snapshotWizard(sess), utils.ErrEmptyRecommendation
	}

	for i := range suggestions {
		suggestions[i].Image = s.images.ContextualImage(suggestions[i].Name, "travel landmark")
	}
	sess.suggestions = suggestions
	sess.selected = make(map[int]bool)
	sess.step = wizardStepDestinations
	return snapshotWizard(sess), nil
}

func (s *WizardService) ToggleDestination(sessionID string, destinationID int) (response_models.WizardStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return response_models.WizardStateResponse{}, utils.ErrSessionNotFound
	}
	if sess.step != wizardStepDestinations {
		return snapshotWizard(sess), utils.ErrWizardStepNotAllowed
	}
	if destinationID < 0 || destinationID >= len(sess.suggestions) {
		return snapshotWizard(sess), utils.ErrInvalidInput
	}

	if sess.selected[destinationID] {
		delete(sess.selected, destinationID)
	} else {
		sess.selected[destinationID] = true
	}
	return snapshotWizard(sess), nil
}

// Back returns from the destination step to the preference step ("조건 변경").
// Preferences, suggestions and the selection survive the round trip.
func (s *WizardService) Back(sessionID string) (response_models.WizardStateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return response_models.WizardStateResponse{}, utils.ErrSessionNotFound
	}
	if sess.step != wizardStepDestinations {
		return snapshotWizard(sess), utils.ErrWizardStepNotAllowed
	}
	sess.step = wizardStepPreferences
	return snapshotWizard(sess), nil
}

func (s *WizardService) Generate(ctx context.Context, sessionID string) (*db_models.Trip, error) {
	s.mu.Lock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, utils.ErrSessionNotFound
	}
	if sess.step != wizardStepDestinations {
		s.mu.Unlock()
		return nil, utils.ErrWizardStepNotAllowed
	}
	selected := selectedDestinations(sess)
	if len(selected) == 0 {
		s.mu.Unlock()
		return nil, utils.ErrNoDestinationSelected
	}
	prefs := sess.preferences
	sess.seq++
	seq := sess.seq
	s.mu.Unlock()

	records, err := s.recommender.GenerateItinerary(ctx, selected, prefs)

	s.mu.Lock()
	sess, ok = s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, utils.ErrSessionNotFound
	}
	if sess.seq != seq {
		// Superseded by a newer generation; drop this response silently.
		s.mu.Unlock()
		return nil, nil
	}
	if err != nil {
		s.mu.Unlock()
		log.Printf("Itinerary generation failed for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: %v", utils.ErrRecommendationFailed, err)
	}
	if len(records) == 0 {
		s.mu.Unlock()
		return nil, utils.ErrEmptyRecommendation
	}
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	items := recommend.ConvertGeneratedItems(records, s.images)
	trip := db_models.Trip{
		ID:               db_models.NewTripID(),
		Title:            tripTitle(selected),
		Subtitle:         tripSubtitle(prefs),
		Status:           db_models.StatusUpcoming,
		Image:            s.images.ContextualImage(selected[0].Name, "landscape"),
		SavedPlacesCount: len(items),
		Items:            items,
	}

	s.tripService.InsertTrip(trip)
	return &trip, nil
}

func (s *WizardService) Cancel(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// selectedDestinations keeps the suggestion order, same as the candidate list
// the user saw.
func selectedDestinations(sess *wizardSession) []response_models.SuggestedDestination {
	ids := make([]int, 0, len(sess.selected))
	for id := range sess.selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]response_models.SuggestedDestination, 0, len(ids))
	for _, id := range ids {
		if id >= 0 && id < len(sess.suggestions) {
			out = append(out, sess.suggestions[id])
		}
	}
	return out
}

func tripTitle(selected []response_models.SuggestedDestination) string {
	if len(selected) > 1 {
		return fmt.Sprintf("%s 외 %d곳 여행", selected[0].Name, len(selected)-1)
	}
	return fmt.Sprintf("%s 여행", selected[0].Name)
}

func tripSubtitle(prefs request_models.TripPreferences) string {
	return strings.Join([]string{prefs.Duration, prefs.Travelers, prefs.Budget, prefs.HotelTier}, " • ")
}

func snapshotWizard(sess *wizardSession) response_models.WizardStateResponse {
	ids := make([]int, 0, len(sess.selected))
	for id := range sess.selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	suggestions := make([]response_models.SuggestedDestination, len(sess.suggestions))
	copy(suggestions, sess.suggestions)

	return response_models.WizardStateResponse{
		SessionID:   sess.id,
		Step:        sess.step,
		Preferences: sess.preferences,
		Suggestions: suggestions,
		SelectedIDs: ids,
	}
}
