package domain

import "time"

// UserState represents lifecycle states for an account.
//
// Accounts are created PENDING, move to IN_REVIEW once the email address is
// verified, and land in INACTIVE or DENIED after the manager decision.
// DENIED is terminal.
type UserState string

const (
	UserStatePending  UserState = "PENDING"
	UserStateInReview UserState = "IN_REVIEW"
	UserStateActive   UserState = "ACTIVE"
	UserStateInactive UserState = "INACTIVE"
	UserStateDenied   UserState = "DENIED"
)

// CustomerStates lists the states in which an account is usable and shows up
// in the customer listing. StatesOnWait lists the states still awaiting email
// verification or a manager decision. DENIED belongs to neither set.
var (
	CustomerStates = []UserState{UserStateActive, UserStateInactive}
	StatesOnWait   = []UserState{UserStatePending, UserStateInReview}
)

// Usable reports whether an account in this state may hold a session token.
func (s UserState) Usable() bool {
	return s == UserStateActive || s == UserStateInactive
}

// User is the domain model for employee accounts.
type User struct {
	ID           string
	CompanyID    *string
	Name         string
	Email        string
	PasswordHash string
	State        UserState
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
