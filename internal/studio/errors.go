package studio

import "errors"

var (
	ErrBlankPayload = errors.New("studio: payload is blank")
	ErrCopyFailed   = errors.New("studio: copy failed")
)
