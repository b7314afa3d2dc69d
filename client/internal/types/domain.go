package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// User is the identity snapshot decoded from a credential at verification
// time. It is immutable for the lifetime of a session.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// TripStatus is the server-assigned lifecycle state of a trip.
type TripStatus string

const (
	TripStatusPlanning  TripStatus = "planning"
	TripStatusBooked    TripStatus = "booked"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// Trip represents a saved trip. Identity is ID; id, status and the
// timestamps are assigned by the server.
type Trip struct {
	ID          string     `json:"id"`
	Destination string     `json:"destination"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	Status      TripStatus `json:"status"`
	Budget      float64    `json:"budget"`
	Travelers   int        `json:"travelers"`
	Theme       string     `json:"theme"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TripTheme classifies the focus of a planned trip.
type TripTheme string

const (
	ThemeAdventure   TripTheme = "adventure"
	ThemeBeach       TripTheme = "beach"
	ThemeCultural    TripTheme = "cultural"
	ThemeLuxury      TripTheme = "luxury"
	ThemeBackpacking TripTheme = "backpacking"
	ThemeFamily      TripTheme = "family"
	ThemeHoneymoon   TripTheme = "honeymoon"
	ThemeRoadTrip    TripTheme = "road_trip"
	ThemeFood        TripTheme = "food"
	ThemeNightlife   TripTheme = "nightlife"
	ThemeShopping    TripTheme = "shopping"
	ThemeWildlife    TripTheme = "wildlife"
	ThemeWellness    TripTheme = "wellness"
	ThemePhotography TripTheme = "photography"
	ThemeReligious   TripTheme = "religious"
	ThemeEducational TripTheme = "educational"
	ThemeBusiness    TripTheme = "business"
)

// BudgetLevel is a coarse spending tier used by the planner.
type BudgetLevel string

const (
	BudgetLow  BudgetLevel = "budget"
	BudgetMid  BudgetLevel = "mid_range"
	BudgetHigh BudgetLevel = "luxury"
)

// TravelerType describes the party composition for a planning request.
type TravelerType string

const (
	TravelerSolo     TravelerType = "solo"
	TravelerCouple   TravelerType = "couple"
	TravelerFamily   TravelerType = "family"
	TravelerFriends  TravelerType = "friends"
	TravelerBusiness TravelerType = "business"
)

// ActivityPreference is a named interest with a weight from 1 (low) to 5 (high).
type ActivityPreference struct {
	Name          string `json:"name"`
	InterestLevel int    `json:"interest_level"`
}

// TripRequest is the full planning input submitted to the planner endpoint.
// Dates use the YYYY-MM-DD wire format.
type TripRequest struct {
	Destination         string               `json:"destination"`
	StartDate           string               `json:"start_date"`
	EndDate             string               `json:"end_date"`
	Budget              float64              `json:"budget"`
	BudgetLevel         BudgetLevel          `json:"budget_level"`
	Travelers           int                  `json:"travelers"`
	TravelerType        TravelerType         `json:"traveler_type"`
	Themes              []TripTheme          `json:"themes"`
	Interests           []ActivityPreference `json:"interests"`
	AccommodationTypes  []string             `json:"preferred_accommodation_types"`
	PreferredTransport  []string             `json:"preferred_transportation"`
	DietaryRestrictions []string             `json:"dietary_restrictions"`
	AccessibilityNeeds  []string             `json:"accessibility_needs"`
	SpecialRequests     string               `json:"special_requests,omitempty"`
}

// Activity is a single scheduled item inside a daily plan.
type Activity struct {
	Time     string  `json:"time"`
	Name     string  `json:"name"`
	Duration int     `json:"duration"`
	Cost     float64 `json:"cost"`
	Location string  `json:"location,omitempty"`
}

// TripDayPlan is one calendar day of an itinerary. EstimatedCost always
// equals the sum of the day's activity costs.
type TripDayPlan struct {
	Date          string     `json:"date"`
	Activities    []Activity `json:"activities"`
	EstimatedCost float64    `json:"estimated_cost"`
}

// TripPlanResponse is a complete itinerary, either produced by the remote
// planner or synthesized locally. TotalEstimatedCost always equals the sum
// of the per-day estimates.
type TripPlanResponse struct {
	ID                 string        `json:"id"`
	Destination        string        `json:"destination"`
	StartDate          string        `json:"start_date"`
	EndDate            string        `json:"end_date"`
	TotalEstimatedCost float64       `json:"total_estimated_cost"`
	DailyPlans         []TripDayPlan `json:"daily_plans"`
	Summary            string        `json:"summary"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}
