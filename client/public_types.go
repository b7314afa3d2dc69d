package client

import (
	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/credstore"
	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	// Domain entities
	User             = types.User
	Trip             = types.Trip
	TripStatus       = types.TripStatus
	TripTheme        = types.TripTheme
	BudgetLevel      = types.BudgetLevel
	TravelerType     = types.TravelerType
	TripRequest      = types.TripRequest
	TripDayPlan      = types.TripDayPlan
	Activity         = types.Activity
	TripPlanResponse = types.TripPlanResponse

	// Requests
	CreateTripRequest  = types.CreateTripRequest
	UpdateTripRequest  = types.UpdateTripRequest
	ActivityPreference = types.ActivityPreference

	// Storage
	CredentialStore = credstore.Store
)

// Re-exported enum values commonly needed by callers.
const (
	TripStatusPlanning  = types.TripStatusPlanning
	TripStatusBooked    = types.TripStatusBooked
	TripStatusCompleted = types.TripStatusCompleted
	TripStatusCancelled = types.TripStatusCancelled

	BudgetLow  = types.BudgetLow
	BudgetMid  = types.BudgetMid
	BudgetHigh = types.BudgetHigh

	ThemeAdventure   = types.ThemeAdventure
	ThemeBeach       = types.ThemeBeach
	ThemeCultural    = types.ThemeCultural
	ThemeLuxury      = types.ThemeLuxury
	ThemeBackpacking = types.ThemeBackpacking
	ThemeFamily      = types.ThemeFamily
	ThemeHoneymoon   = types.ThemeHoneymoon
	ThemeRoadTrip    = types.ThemeRoadTrip
	ThemeFood        = types.ThemeFood
	ThemeNightlife   = types.ThemeNightlife
	ThemeShopping    = types.ThemeShopping
	ThemeWildlife    = types.ThemeWildlife
	ThemeWellness    = types.ThemeWellness
	ThemePhotography = types.ThemePhotography
	ThemeReligious   = types.ThemeReligious
	ThemeEducational = types.ThemeEducational
	ThemeBusiness    = types.ThemeBusiness

	TravelerSolo     = types.TravelerSolo
	TravelerCouple   = types.TravelerCouple
	TravelerFamily   = types.TravelerFamily
	TravelerFriends  = types.TravelerFriends
	TravelerBusiness = types.TravelerBusiness
)

// NewFileCredentialStore persists the credential at path.
func NewFileCredentialStore(path string) CredentialStore { return credstore.NewFileStore(path) }

// NewMemCredentialStore keeps the credential in memory only, optionally
// pre-seeded with a token.
func NewMemCredentialStore(token string) CredentialStore { return credstore.NewMemStore(token) }
