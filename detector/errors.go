package detector

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyClaim        = errors.New("claim is empty")
	ErrMissingCredential = errors.New("missing credential: provide an OpenAI API key")
	ErrUnsupportedModel  = errors.New("unsupported model")
	ErrNoEvidence        = errors.New("no evidence could be gathered: every source failed")
	ErrInvalidTransition = errors.New("invalid stage transition")
)

// UpstreamError wraps a failed completion call.
type UpstreamError struct {
	Model Model
	Err   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("error during analysis (model %s): %v", e.Model, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
