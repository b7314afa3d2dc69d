package types

// ------------------------------
// Request Payloads
// ------------------------------

// LoginRequest carries credentials for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries a new account for POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// CreateTripRequest is a new trip minus the server-assigned fields
// (id, status, timestamps).
type CreateTripRequest struct {
	Destination string  `json:"destination"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Budget      float64 `json:"budget"`
	Travelers   int     `json:"travelers"`
	Theme       string  `json:"theme"`
}

// UpdateTripRequest is a partial update for PATCH /trips/{id}. Nil fields
// are omitted from the body and left untouched by the server.
type UpdateTripRequest struct {
	Destination *string     `json:"destination,omitempty"`
	StartDate   *string     `json:"startDate,omitempty"`
	EndDate     *string     `json:"endDate,omitempty"`
	Status      *TripStatus `json:"status,omitempty"`
	Budget      *float64    `json:"budget,omitempty"`
	Travelers   *int        `json:"travelers,omitempty"`
	Theme       *string     `json:"theme,omitempty"`
}
