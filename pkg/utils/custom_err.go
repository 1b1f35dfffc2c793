package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrTripNotFound           = errors.New("trip not found")
	ErrSessionNotFound        = errors.New("session not found")
	ErrRecommendationFailed   = errors.New("recommendation service failed")
	ErrEmptyRecommendation    = errors.New("no usable recommendations")
	ErrNoDestinationSelected  = errors.New("no destination selected")
	ErrReplaceTargetNotFound  = errors.New("replace target not found")
	ErrWizardStepNotAllowed   = errors.New("wizard step not allowed")
	ErrCurationSearchRequired = errors.New("search query is required")
	ErrPersistenceUnavailable = errors.New("persistent store unavailable")
)
