package clipboard

import "errors"

var (
	ErrBlankText   = errors.New("clipboard: text is blank")
	ErrWriteFailed = errors.New("clipboard: write failed")
	ErrUnsupported = errors.New("clipboard: not supported on this system")
	ErrNoWriters   = errors.New("clipboard: no writers configured")
)
