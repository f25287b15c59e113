package domain

import "time"

// PermitState tracks the approval status of a holiday request.
type PermitState string

const (
	PermitStatePending  PermitState = "PENDING"
	PermitStateApproved PermitState = "APPROVED"
	PermitStateRejected PermitState = "REJECTED"
)

// PermitType enumerates supported leave categories.
type PermitType string

const (
	PermitTypeAnnual   PermitType = "ANNUAL"
	PermitTypeSick     PermitType = "SICK"
	PermitTypeUnpaid   PermitType = "UNPAID"
	PermitTypeParental PermitType = "PARENTAL"
)

// Permit is a holiday/leave request raised by an employee and decided by a
// manager.
type Permit struct {
	ID          string
	UserID      string
	Type        PermitType
	StartDate   time.Time
	EndDate     time.Time
	Description string
	State       PermitState
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
