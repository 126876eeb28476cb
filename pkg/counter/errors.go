package counter

import "errors"

var (
	ErrUnexpectedStatus = errors.New("counter: unexpected response status")
	ErrDecodeResponse   = errors.New("counter: failed to decode response")
	ErrEmptyIP          = errors.New("counter: empty client ip")
	ErrNilStore         = errors.New("counter: store is nil")
)
