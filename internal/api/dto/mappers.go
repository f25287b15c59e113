package dto

import "github.com/spec-kit/hr-service/internal/domain"

// FromUser maps a domain user to its response projection.
func FromUser(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		CompanyID: user.CompanyID,
		Name:      user.Name,
		Email:     user.Email,
		State:     string(user.State),
	}
}

// FromUsers maps a slice of domain users.
func FromUsers(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, FromUser(user))
	}
	return out
}

// FromPermit maps a domain permit to its response projection.
func FromPermit(permit *domain.Permit) PermitResponse {
	return PermitResponse{
		ID:          permit.ID,
		UserID:      permit.UserID,
		Type:        string(permit.Type),
		StartDate:   permit.StartDate,
		EndDate:     permit.EndDate,
		Description: permit.Description,
		State:       string(permit.State),
	}
}

// FromPermits maps a slice of domain permits.
func FromPermits(permits []*domain.Permit) []PermitResponse {
	out := make([]PermitResponse, 0, len(permits))
	for _, permit := range permits {
		out = append(out, FromPermit(permit))
	}
	return out
}
