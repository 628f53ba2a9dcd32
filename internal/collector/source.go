// Package collector owns the single fetch of the source document: a
// static JSON file of weekly observations, read from disk or over one
// HTTP GET. There is no retry logic; a failed fetch is returned to the
// caller, which surfaces it as an error state.
package collector

import (
	"context"
	"errors"

	"CommodityPulse/internal/model"
)

// ErrBadDocument wraps structural decode failures, as opposed to I/O
// errors reaching the document at all.
var ErrBadDocument = errors.New("malformed source document")

// Source supplies the raw observation sequence from one location.
type Source interface {
	Fetch(ctx context.Context) ([]model.RawObservation, error)
	Name() string
}
