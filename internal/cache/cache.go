package cache

import (
	"context"
	"errors"

	"fricoach/internal/model"
)

// Package cache holds the FRI snapshot cache abstraction. The service treats
// the cache as best-effort: misses and errors both lead to recomputation.

// ErrMiss is returned when no snapshot is cached for a customer.
var ErrMiss = errors.New("fri cache miss")

// FRICache stores computed FRI snapshots keyed by customer ID.
type FRICache interface {
	// Get returns the cached snapshot for a customer or ErrMiss.
	Get(ctx context.Context, customerID string) (*model.FRIResult, error)
	// Set stores a snapshot under the customer ID with the cache's TTL.
	Set(ctx context.Context, customerID string, result *model.FRIResult) error
}
