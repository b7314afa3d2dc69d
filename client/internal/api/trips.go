package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/errs"
	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/types"
)

// ListTrips fetches the full trip collection.
// Endpoint: GET /trips
func ListTrips(ctx context.Context, rc *resty.Client) ([]types.Trip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := rc.R().SetContext(ctx).Get("/trips")
	if err != nil {
		return nil, errs.FromTransport("list trips", err)
	}
	if resp.IsError() {
		return nil, errs.FromResponse("list trips", resp.StatusCode(), resp.Body())
	}
	var trips []types.Trip
	if err := json.Unmarshal(resp.Body(), &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// CreateTrip submits a new trip. The server assigns id, status and
// timestamps.
// Endpoint: POST /trips
func CreateTrip(ctx context.Context, rc *resty.Client, req types.CreateTripRequest) (*types.Trip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidatePresent(req.Destination, "destination"); err != nil {
		return nil, errs.Validation("create trip", err)
	}
	resp, err := rc.R().SetContext(ctx).SetBody(req).Post("/trips")
	if err != nil {
		return nil, errs.FromTransport("create trip", err)
	}
	if resp.IsError() {
		return nil, errs.FromResponse("create trip", resp.StatusCode(), resp.Body())
	}
	var trip types.Trip
	if err := json.Unmarshal(resp.Body(), &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// UpdateTrip submits a partial update for one trip.
// Endpoint: PATCH /trips/{id}
func UpdateTrip(ctx context.Context, rc *resty.Client, id string, req types.UpdateTripRequest) (*types.Trip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidatePresent(id, "trip id"); err != nil {
		return nil, errs.Validation("update trip", err)
	}
	resp, err := rc.R().SetContext(ctx).SetBody(req).Patch(fmt.Sprintf("/trips/%s", id))
	if err != nil {
		return nil, errs.FromTransport("update trip", err)
	}
	if resp.IsError() {
		return nil, errs.FromResponse("update trip", resp.StatusCode(), resp.Body())
	}
	var trip types.Trip
	if err := json.Unmarshal(resp.Body(), &trip); err != nil {
		return nil, err
	}
	return &trip, nil
}

// DeleteTrip removes a trip by id.
// Endpoint: DELETE /trips/{id}
func DeleteTrip(ctx context.Context, rc *resty.Client, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidatePresent(id, "trip id"); err != nil {
		return errs.Validation("delete trip", err)
	}
	resp, err := rc.R().SetContext(ctx).Delete(fmt.Sprintf("/trips/%s", id))
	if err != nil {
		return errs.FromTransport("delete trip", err)
	}
	if resp.IsError() {
		return errs.FromResponse("delete trip", resp.StatusCode(), resp.Body())
	}
	return nil
}
