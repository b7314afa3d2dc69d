package client

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/types"
)

// SynthesizePlan builds a local itinerary from a planning request when the
// remote planner is unreachable. It fails when either date is malformed or
// the start date falls after the end date. The result is fully
// deterministic: the same request always yields the same plan, including its
// id and timestamps.
//
// Policy: each day in the inclusive date range gets a five-slot skeleton of
// breakfast, a themed morning activity, lunch, a themed afternoon slot and
// dinner. The two themed slots rotate through the requested themes (sorted)
// by day index, defaulting to a city tour and free time when no themes were
// requested. Costs scale with the budget tier and are rounded to cents; a
// day's estimated cost is the exact sum of its activity costs and the total
// is the exact sum over days.
func SynthesizePlan(req types.TripRequest) (*types.TripPlanResponse, error) {
	start, err := types.ParseDate(req.StartDate, "start_date")
	if err != nil {
		return nil, err
	}
	end, err := types.ParseDate(req.EndDate, "end_date")
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, fmt.Errorf("start_date must not be after end_date")
	}

	mult := budgetMultiplier(req.BudgetLevel)
	themes := sortedThemes(req.Themes)

	var days []types.TripDayPlan
	var total float64
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		idx := len(days)
		morning, afternoon := themedSlots(req.Destination, themes, idx)

		activities := []types.Activity{
			{Time: "09:00", Name: "Breakfast at a local cafe", Duration: 60, Cost: round2(15 * mult), Location: "Downtown"},
			{Time: "10:30", Name: morning, Duration: 180, Cost: round2(45 * mult), Location: "City Center"},
			{Time: "14:00", Name: "Lunch at a local restaurant", Duration: 90, Cost: round2(25 * mult), Location: "Main Square"},
			{Time: "16:00", Name: afternoon, Duration: 120, Cost: 0},
			{Time: "19:30", Name: "Dinner at a recommended restaurant", Duration: 120, Cost: round2(40 * mult), Location: "Riverside District"},
		}

		var dayCost float64
		for _, a := range activities {
			dayCost += a.Cost
		}
		dayCost = round2(dayCost)
		total = round2(total + dayCost)

		days = append(days, types.TripDayPlan{
			Date:          d.Format(types.DateLayout),
			Activities:    activities,
			EstimatedCost: dayCost,
		})
	}

	stamp := start.UTC()
	return &types.TripPlanResponse{
		ID:                 planID(req),
		Destination:        req.Destination,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		TotalEstimatedCost: total,
		DailyPlans:         days,
		Summary:            planSummary(req, len(days)),
		CreatedAt:          stamp,
		UpdatedAt:          stamp,
	}, nil
}

// planID derives a stable id from the canonical JSON of the request so
// identical requests synthesize identical plans.
func planID(req types.TripRequest) string {
	b, err := json.Marshal(req)
	if err != nil {
		return uuid.NewSHA1(uuid.NameSpaceURL, []byte(req.Destination)).String()
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, b).String()
}

func planSummary(req types.TripRequest, days int) string {
	base := fmt.Sprintf("A %d-day trip to %s with a %s budget", days, req.Destination, req.BudgetLevel)
	themes := sortedThemes(req.Themes)
	if len(themes) == 0 {
		return base + "."
	}
	names := make([]string, len(themes))
	for i, th := range themes {
		names[i] = string(th)
	}
	return fmt.Sprintf("%s, focusing on %s.", base, strings.Join(names, ", "))
}

func budgetMultiplier(level types.BudgetLevel) float64 {
	switch level {
	case types.BudgetLow:
		return 0.7
	case types.BudgetHigh:
		return 1.6
	default:
		return 1.0
	}
}

func sortedThemes(themes []types.TripTheme) []types.TripTheme {
	out := make([]types.TripTheme, len(themes))
	copy(out, themes)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// themedSlots picks the morning and afternoon activity names for a day.
// With no themes requested, every day gets the generic city tour skeleton.
func themedSlots(destination string, themes []types.TripTheme, dayIdx int) (string, string) {
	if len(themes) == 0 {
		return fmt.Sprintf("%s City Tour", destination), "Free time to explore"
	}
	morning := themeActivity(themes[dayIdx%len(themes)], destination)
	afternoon := themeAfternoon(themes[(dayIdx+1)%len(themes)])
	return morning, afternoon
}

func themeActivity(th types.TripTheme, destination string) string {
	switch th {
	case types.ThemeAdventure:
		return "Guided outdoor adventure"
	case types.ThemeBeach:
		return "Morning at the beach"
	case types.ThemeCultural:
		return fmt.Sprintf("%s museums and historic quarter", destination)
	case types.ThemeLuxury:
		return "Private sightseeing tour"
	case types.ThemeBackpacking:
		return "Self-guided walking route"
	case types.ThemeFamily:
		return "Family-friendly attractions"
	case types.ThemeHoneymoon:
		return "Couples' scenic morning"
	case types.ThemeRoadTrip:
		return "Scenic drive and stops"
	case types.ThemeFood:
		return "Local market and food tour"
	case types.ThemeNightlife:
		return "Late brunch and neighborhood stroll"
	case types.ThemeShopping:
		return "Shopping district visit"
	case types.ThemeWildlife:
		return "Wildlife park excursion"
	case types.ThemeWellness:
		return "Spa and wellness session"
	case types.ThemePhotography:
		return "Golden-hour photo walk"
	case types.ThemeReligious:
		return "Historic temples and shrines"
	case types.ThemeEducational:
		return "Science and history museums"
	case types.ThemeBusiness:
		return "Coworking and city highlights"
	default:
		return fmt.Sprintf("%s City Tour", destination)
	}
}

func themeAfternoon(th types.TripTheme) string {
	switch th {
	case types.ThemeBeach:
		return "Sunset by the water"
	case types.ThemeFood:
		return "Cafe hopping"
	case types.ThemeNightlife:
		return "Rest before the evening out"
	case types.ThemeWellness:
		return "Quiet garden afternoon"
	default:
		return "Free time to explore"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
