package generations

import "errors"

var (
	ErrNotFound          = errors.New("generation not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrForbidden         = errors.New("forbidden")
	ErrNotReady          = errors.New("resume is not ready for download")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrRenderFailed      = errors.New("resume generation failed")
)
