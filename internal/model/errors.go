package model

import "errors"

var (
	// ErrModelNotFound is returned when the model artifact cannot be found at startup.
	ErrModelNotFound = errors.New("model not found")

	// ErrMissingFeature is returned when a row lacks a column the model was trained on.
	ErrMissingFeature = errors.New("missing feature")

	// ErrUnknownFeature is returned when a row carries a column unseen at fit time.
	ErrUnknownFeature = errors.New("unknown feature")

	// ErrUnexpectedOutput is returned when the model yields no usable label.
	ErrUnexpectedOutput = errors.New("unexpected model output")

	// ErrUnknownBackend is returned for an unsupported MODEL_BACKEND.
	ErrUnknownBackend = errors.New("unknown model backend")
)
