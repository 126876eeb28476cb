package qrcode

import "errors"

var (
	ErrEncodeFailed    = errors.New("failed to encode qr code")
	ErrNilEncoder      = errors.New("encoder is nil")
	ErrNoSurface       = errors.New("no rendered surface to export")
	ErrFormatMismatch  = errors.New("surface does not match requested format")
	ErrUnknownFormat   = errors.New("unknown output format")
	ErrInvalidColor    = errors.New("invalid hex color")
	ErrSerializeFailed = errors.New("failed to serialize surface")
)
