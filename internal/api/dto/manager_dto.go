package dto

import "time"

// UserAuthorizationRequest carries the manager decision for an account.
type UserAuthorizationRequest struct {
	UserID string `json:"user_id"`
	Answer string `json:"answer"`
}

// PermitRequest payload for a new holiday request.
type PermitRequest struct {
	Type        string    `json:"type"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Description string    `json:"description"`
}

// HolidayAuthorizeRequest carries the manager decision for a permit. The
// token travels in the body and is verified before the decision is applied.
type HolidayAuthorizeRequest struct {
	Token    string `json:"token"`
	PermitID string `json:"permit_id"`
	Answer   string `json:"answer"`
}

// PermitResponse is the projection returned for permit reads.
type PermitResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Description string    `json:"description"`
	State       string    `json:"state"`
}
