package template

import "errors"

// Template-specific errors.
var (
	ErrTemplateNotReadable = errors.New("unable to read template file")
	ErrTemplateInvalid     = errors.New("invalid template")
	ErrRenderFailed        = errors.New("failed to render template")
)
