package api

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"

	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/errs"
	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/types"
)

// PlanTrip submits a planning request and returns the generated itinerary.
// Local validation happens in the orchestrator before any network call; this
// function only speaks to the endpoint.
// Endpoint: POST /trips/plan
func PlanTrip(ctx context.Context, rc *resty.Client, req types.TripRequest) (*types.TripPlanResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resp, err := rc.R().SetContext(ctx).SetBody(req).Post("/trips/plan")
	if err != nil {
		return nil, errs.FromTransport("plan trip", err)
	}
	if resp.IsError() {
		return nil, errs.FromResponse("plan trip", resp.StatusCode(), resp.Body())
	}
	var plan types.TripPlanResponse
	if err := json.Unmarshal(resp.Body(), &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}
