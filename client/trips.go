package client

import (
	"context"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/api"
	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/types"
)

// TripStore is the synchronization layer for the trip collection. The cache
// follows an invalidate-and-refetch policy: every successful mutation marks
// the cache stale and the next read rebuilds it wholesale from the server.
// Nothing is ever patched in place, so the cache never holds a trip the
// server does not have.
type TripStore struct {
	mu    sync.Mutex
	trips []types.Trip
	fresh bool

	// issued counts refetches started; applied is the generation of the
	// fetch whose result currently populates the cache. A completion only
	// installs when it is newer than what is already applied, so overlapping
	// fetches converge to the most recently issued one.
	issued  uint64
	applied uint64

	http     *resty.Client
	notifier Notifier
}

func newTripStore(http *resty.Client, notifier Notifier) *TripStore {
	return &TripStore{http: http, notifier: notifier}
}

// List returns the trip collection, refetching first when the cache is
// stale. The returned slice is a copy.
func (t *TripStore) List(ctx context.Context) ([]types.Trip, error) {
	t.mu.Lock()
	if t.fresh {
		out := snapshot(t.trips)
		t.mu.Unlock()
		return out, nil
	}
	t.mu.Unlock()

	if err := t.Refetch(ctx); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return snapshot(t.trips), nil
}

// Refetch fetches the full collection and replaces the cache. When fetches
// overlap, an older completion never supersedes a newer one.
func (t *TripStore) Refetch(ctx context.Context) error {
	t.mu.Lock()
	t.issued++
	gen := t.issued
	t.mu.Unlock()

	trips, err := api.ListTrips(ctx, t.http)
	if err != nil {
		t.notifier.Notify(Notification{
			Title:       "Error",
			Description: "Failed to load trips. Please try again.",
			Variant:     VariantDestructive,
		})
		return err
	}

	t.mu.Lock()
	if gen > t.applied {
		t.trips = trips
		t.applied = gen
		t.fresh = true
	}
	t.mu.Unlock()
	return nil
}

// Create submits a new trip. On success the cache is invalidated so the
// next read reflects the server's canonical state, including the generated
// id, status and timestamps.
func (t *TripStore) Create(ctx context.Context, req types.CreateTripRequest) (*types.Trip, error) {
	trip, err := api.CreateTrip(ctx, t.http, req)
	if err != nil {
		t.notifier.Notify(Notification{
			Title:       "Error",
			Description: "Failed to create trip. Please try again.",
			Variant:     VariantDestructive,
		})
		return nil, err
	}
	t.Invalidate()
	t.notifier.Notify(Notification{
		Title:       "Trip created",
		Description: "Your trip has been created successfully!",
		Variant:     VariantDefault,
	})
	return trip, nil
}

// Update submits a partial update for one trip. There is no optimistic
// merge: callers observe new values only through invalidation and refetch.
func (t *TripStore) Update(ctx context.Context, id string, req types.UpdateTripRequest) (*types.Trip, error) {
	trip, err := api.UpdateTrip(ctx, t.http, id, req)
	if err != nil {
		t.notifier.Notify(Notification{
			Title:       "Error",
			Description: "Failed to update trip. Please try again.",
			Variant:     VariantDestructive,
		})
		return nil, err
	}
	t.Invalidate()
	t.notifier.Notify(Notification{
		Title:       "Trip updated",
		Description: "Your trip has been updated successfully!",
		Variant:     VariantDefault,
	})
	return trip, nil
}

// Delete removes a trip by id and invalidates the cache on success.
func (t *TripStore) Delete(ctx context.Context, id string) error {
	if err := api.DeleteTrip(ctx, t.http, id); err != nil {
		t.notifier.Notify(Notification{
			Title:       "Error",
			Description: "Failed to delete trip. Please try again.",
			Variant:     VariantDestructive,
		})
		return err
	}
	t.Invalidate()
	t.notifier.Notify(Notification{
		Title:       "Trip deleted",
		Description: "Your trip has been deleted.",
		Variant:     VariantDefault,
	})
	return nil
}

// Invalidate marks the cache stale. Idempotent; mutations on different ids
// may each call it concurrently.
func (t *TripStore) Invalidate() {
	t.mu.Lock()
	t.fresh = false
	t.mu.Unlock()
}

// Cached returns the current cache contents without touching the network,
// plus whether the cache is fresh.
func (t *TripStore) Cached() ([]types.Trip, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return snapshot(t.trips), t.fresh
}

func snapshot(trips []types.Trip) []types.Trip {
	out := make([]types.Trip, len(trips))
	copy(out, trips)
	return out
}
