package domain

import "errors"

var (
	// ErrDataLoad signals a missing or malformed keyword dataset.
	// Fatal at startup: the process must not serve traffic without a lexicon.
	ErrDataLoad = errors.New("keyword dataset load failed")
	// ErrInvalidInput signals empty or whitespace-only analysis input.
	ErrInvalidInput = errors.New("text cannot be empty")
	// ErrAnalysisFailed signals an unexpected failure inside scoring.
	ErrAnalysisFailed = errors.New("analysis failed")
	// ErrUnknownPolicy signals an unrecognized scoring policy name.
	ErrUnknownPolicy = errors.New("unknown scoring policy")
)
