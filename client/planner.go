package client

import (
	"context"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/api"
	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/errs"
	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/types"
)

// Planner orchestrates planning submissions. One request flows through
// validate → submit → current plan; when the planning service cannot be
// reached at all, a deterministic itinerary is synthesized locally so the
// flow still produces a usable result.
type Planner struct {
	mu   sync.Mutex
	plan *types.TripPlanResponse

	http     *resty.Client
	notifier Notifier
}

func newPlanner(http *resty.Client, notifier Notifier) *Planner {
	return &Planner{http: http, notifier: notifier}
}

// Submit validates and submits a planning request. The outcome becomes the
// current plan on success or on offline fallback; any other failure leaves
// the current plan untouched.
func (p *Planner) Submit(ctx context.Context, req types.TripRequest) (*types.TripPlanResponse, error) {
	if err := types.ValidatePlanRequest(req); err != nil {
		verr := errs.Validation("plan trip", err)
		p.notifier.Notify(Notification{
			Title:       "Missing info",
			Description: "Please fill destination and dates",
			Variant:     VariantDestructive,
		})
		return nil, verr
	}
	plansRequestedTotal.Inc()

	plan, err := api.PlanTrip(ctx, p.http, req)
	switch {
	case err == nil:
		p.setPlan(plan)
		p.notifier.Notify(Notification{Title: "Trip planned", Description: "Your AI itinerary is ready!", Variant: VariantDefault})
		return plan, nil

	case errs.IsUnreachable(err):
		log.Warn().Err(err).Msg("planning service unreachable, synthesizing local itinerary")
		fallback, synthErr := SynthesizePlan(req)
		if synthErr != nil {
			// The request passed validation above, so synthesis cannot
			// fail on dates; surface the transport failure if it does.
			p.notifier.Notify(Notification{
				Title:       "Error",
				Description: ErrorMessage(err, "Failed to plan trip"),
				Variant:     VariantDestructive,
			})
			return nil, err
		}
		plansFallbackTotal.Inc()
		p.setPlan(fallback)
		p.notifier.Notify(Notification{
			Title:       "Offline demo",
			Description: "Backend not reachable. Showing a local mock itinerary.",
			Variant:     VariantDefault,
		})
		return fallback, nil

	default:
		p.notifier.Notify(Notification{
			Title:       "Error",
			Description: ErrorMessage(err, "Failed to plan trip"),
			Variant:     VariantDestructive,
		})
		return nil, err
	}
}

// QuickFillAndGenerate runs the canonical demo request through the normal
// submit pipeline, fallback behavior included.
func (p *Planner) QuickFillAndGenerate(ctx context.Context) (*types.TripPlanResponse, error) {
	return p.Submit(ctx, DemoRequest(time.Now()))
}

// CurrentPlan returns a copy of the plan held from the latest successful or
// synthesized submission, or ok=false when none exists.
func (p *Planner) CurrentPlan() (types.TripPlanResponse, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.plan == nil {
		return types.TripPlanResponse{}, false
	}
	return *p.plan, true
}

// ClearPlan drops the current plan.
func (p *Planner) ClearPlan() {
	p.mu.Lock()
	p.plan = nil
	p.mu.Unlock()
}

func (p *Planner) setPlan(plan *types.TripPlanResponse) {
	p.mu.Lock()
	p.plan = plan
	p.mu.Unlock()
}

// DemoRequest is the representative profile behind the quick-fill flow: a
// week-out Paris city break for two.
func DemoRequest(now time.Time) types.TripRequest {
	return types.TripRequest{
		Destination:  "Paris",
		StartDate:    now.AddDate(0, 0, 7).Format(types.DateLayout),
		EndDate:      now.AddDate(0, 0, 10).Format(types.DateLayout),
		Budget:       1800,
		BudgetLevel:  types.BudgetMid,
		Travelers:    2,
		TravelerType: types.TravelerCouple,
		Themes:       []types.TripTheme{types.ThemeFood, types.ThemeCultural, types.ThemePhotography},
		Interests: []types.ActivityPreference{
			{Name: "Museums", InterestLevel: 4},
			{Name: "Food tours", InterestLevel: 5},
			{Name: "Shopping", InterestLevel: 3},
		},
		AccommodationTypes:  []string{"Hotel", "Apartment"},
		PreferredTransport:  []string{"Public transit", "Walking"},
		DietaryRestrictions: []string{},
		AccessibilityNeeds:  []string{},
		SpecialRequests:     "Prefer central neighborhoods and iconic viewpoints",
	}
}
