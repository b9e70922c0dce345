package tracker

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable   = errors.New("tracker: host unreachable or transport failure")
	ErrBadStatus     = errors.New("tracker: non-2xx response")
	ErrBadResponse   = errors.New("tracker: invalid response format or malformed data")
	ErrMissingSecret = errors.New("tracker: api secret is not configured")
)

type FetchError struct {
	Sentinel error
	Op       string
	Status   int
	Err      error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Op, e.Sentinel)
	if e.Status > 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Sentinel
}
