package biaslens

import "github.com/kailas-cloud/biaslens/internal/domain"

// Sentinel errors re-exported for errors.Is checks by SDK consumers.
var (
	// ErrDataLoad signals a missing or malformed keyword dataset.
	ErrDataLoad = domain.ErrDataLoad
	// ErrInvalidInput signals empty or whitespace-only analysis input.
	ErrInvalidInput = domain.ErrInvalidInput
	// ErrUnknownPolicy signals an unrecognized scoring policy name.
	ErrUnknownPolicy = domain.ErrUnknownPolicy
)
