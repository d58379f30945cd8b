package adnetwork

import (
	"errors"
	"net/http"
	"time"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrRetryExhausted  = errors.New("retry attempts exhausted")
)

// RetryPolicy controls how a failed request is retried within one call. The
// controller retries again on its next tick, so attempts here stay few.
type RetryPolicy struct {
	MaxAttempts      uint32
	BaseDelay        time.Duration
	MaxDelay         time.Duration
	RetryStatusCodes []int
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   200 * time.Millisecond,
		MaxDelay:    2 * time.Second,
		RetryStatusCodes: []int{
			http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout,
		},
	}
}

func (p RetryPolicy) Validate() error {
	if p.MaxAttempts == 0 {
		return ErrInvalidArgument
	}
	if p.BaseDelay <= 0 {
		return ErrInvalidArgument
	}
	if p.MaxDelay < p.BaseDelay {
		return ErrInvalidArgument
	}
	for _, code := range p.RetryStatusCodes {
		if code < 100 || code > 599 {
			return errors.New("invalid status code")
		}
	}
	return nil
}

// delay returns the backoff before attempt+1, doubling from BaseDelay and
// capped at MaxDelay.
func (p RetryPolicy) delay(attempt uint32) time.Duration {
	d := p.BaseDelay
	for i := uint32(1); i < attempt; i++ {
		d *= 2
		if d >= p.MaxDelay {
			return p.MaxDelay
		}
	}
	return d
}
