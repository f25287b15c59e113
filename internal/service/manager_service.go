package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/repository"
	apperrors "github.com/spec-kit/hr-service/pkg/util"
)

// ManagerService covers the manager-facing reads and the holiday permit
// workflow: employees submit permits, managers list and decide them.
type ManagerService struct {
	users      repository.UserRepository
	permits    repository.PermitRepository
	dispatcher events.Dispatcher
}

// ManagerDependencies encapsulates repo requirements for the service.
type ManagerDependencies struct {
	UserRepo   repository.UserRepository
	PermitRepo repository.PermitRepository
	Dispatcher events.Dispatcher
}

// NewManagerService builds the service.
func NewManagerService(deps ManagerDependencies) *ManagerService {
	return &ManagerService{
		users:      deps.UserRepo,
		permits:    deps.PermitRepo,
		dispatcher: deps.Dispatcher,
	}
}

// EmployeesByCompany lists every account attached to a company.
func (s *ManagerService) EmployeesByCompany(ctx context.Context, companyID string) ([]*domain.User, error) {
	return s.users.ListByCompany(ctx, companyID)
}

// PermitInput carries the fields of a holiday request.
type PermitInput struct {
	Type        domain.PermitType
	StartDate   time.Time
	EndDate     time.Time
	Description string
}

// RequestPermit opens a holiday request for an employee in PENDING state.
func (s *ManagerService) RequestPermit(ctx context.Context, userID string, input PermitInput) (*domain.Permit, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, apperrors.NewValidationError("end date precedes start date", nil)
	}

	permit := &domain.Permit{
		UserID:      userID,
		Type:        input.Type,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Description: input.Description,
		State:       domain.PermitStatePending,
	}
	if err := s.permits.Create(ctx, permit); err != nil {
		return nil, err
	}
	return permit, nil
}

// PendingPermits lists holiday requests awaiting a decision.
func (s *ManagerService) PendingPermits(ctx context.Context) ([]*domain.Permit, error) {
	return s.permits.ListByState(ctx, domain.PermitStatePending)
}

// AuthorizePermit applies the manager decision to a holiday request.
// ACCEPT approves, DENY rejects; both case-insensitive.
func (s *ManagerService) AuthorizePermit(ctx context.Context, permitID, answer string) (bool, error) {
	permit, err := s.permits.GetByID(ctx, permitID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, apperrors.NewNotFound("permit", map[string]any{"permit_id": permitID})
		}
		return false, err
	}

	switch {
	case domain.AnswerAccept.Matches(answer):
		permit.State = domain.PermitStateApproved
	case domain.AnswerDeny.Matches(answer):
		permit.State = domain.PermitStateRejected
	default:
		return false, apperrors.NewValidationError("answer must be ACCEPT or DENY", nil)
	}

	if err := s.permits.Update(ctx, permit); err != nil {
		return false, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventPermitAuthorized,
			UserID:    permit.UserID,
			Timestamp: time.Now(),
			Payload: events.PermitAuthorizedPayload{
				PermitID: permit.ID,
				NewState: permit.State,
			},
		})
	}
	return true, nil
}
