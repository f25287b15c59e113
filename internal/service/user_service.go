package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/hr-service/internal/auth"
	"github.com/spec-kit/hr-service/internal/config"
	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/events"
	"github.com/spec-kit/hr-service/internal/mail"
	"github.com/spec-kit/hr-service/internal/repository"
	"github.com/spec-kit/hr-service/internal/verification"
	apperrors "github.com/spec-kit/hr-service/pkg/util"
)

// VerificationCodes issues and redeems one-time email verification codes.
type VerificationCodes interface {
	Generate(ctx context.Context, userID string) (string, error)
	Consume(ctx context.Context, code string) (string, error)
}

// MailSender delivers templated emails.
type MailSender interface {
	Send(ctx context.Context, to, template, payload string) error
}

// UserService orchestrates the account lifecycle: registration, login,
// email verification, and the manager accept/deny decision.
type UserService struct {
	users      repository.UserRepository
	codes      VerificationCodes
	mailer     MailSender
	dispatcher events.Dispatcher
	tokenMgr   *auth.TokenManager
	bcryptCost int
	verifyBase string
}

// UserDependencies encapsulates collaborator requirements for the service.
type UserDependencies struct {
	UserRepo   repository.UserRepository
	Codes      VerificationCodes
	Mailer     MailSender
	Dispatcher events.Dispatcher
}

// NewUserService builds the service.
func NewUserService(cfg config.Config, deps UserDependencies) *UserService {
	return &UserService{
		users:      deps.UserRepo,
		codes:      deps.Codes,
		mailer:     deps.Mailer,
		dispatcher: deps.Dispatcher,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
		verifyBase: cfg.Mail.VerificationBaseURL,
	}
}

// RegisterInput carries the fields needed to open an account.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	CompanyID *string
}

// Register creates an account in PENDING state and emails a verification
// link. The account row stays persisted even when the code or mail step
// fails afterwards; there is no compensation for a partial failure.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (bool, error) {
	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return false, apperrors.NewConflict("email already registered", map[string]any{"email": input.Email})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return false, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return false, err
	}

	user := &domain.User{
		CompanyID:    input.CompanyID,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		State:        domain.UserStatePending,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return false, err
	}

	s.publish(ctx, events.EventUserRegistered, user.ID, events.UserRegisteredPayload{Email: user.Email})

	code, err := s.codes.Generate(ctx, user.ID)
	if err != nil {
		return false, err
	}

	link := s.verifyBase + code
	if err := s.mailer.Send(ctx, user.Email, mail.TemplateVerification, link); err != nil {
		return false, err
	}
	return true, nil
}

// Login authenticates by email and password. The credential check always
// precedes the state check so a wrong password never leaks the account
// state. The returned string is either a signed session token (ACTIVE or
// INACTIVE accounts) or the literal state name for accounts still waiting
// on verification or review.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewInvalidCredentials()
		}
		return "", err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", apperrors.NewInvalidCredentials()
	}

	switch user.State {
	case domain.UserStatePending, domain.UserStateInReview:
		return string(user.State), nil
	case domain.UserStateDenied:
		return "", apperrors.NewDeniedUser()
	}

	token, _, err := s.tokenMgr.GenerateToken(user.ID)
	if err != nil {
		return "", err
	}
	return token, nil
}

// Authorize applies the manager decision for an account under review.
// ACCEPT moves the account to INACTIVE, DENY to DENIED; both comparisons
// are case-insensitive. Any other answer leaves the account untouched and
// returns it unchanged.
func (s *UserService) Authorize(ctx context.Context, userID, answer string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUserNotFound(userID)
		}
		return nil, err
	}

	switch {
	case domain.AnswerAccept.Matches(answer):
		return s.transition(ctx, user, domain.UserStateInactive, answer)
	case domain.AnswerDeny.Matches(answer):
		return s.transition(ctx, user, domain.UserStateDenied, answer)
	}
	return user, nil
}

func (s *UserService) transition(ctx context.Context, user *domain.User, to domain.UserState, answer string) (*domain.User, error) {
	from := user.State
	user.State = to
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventUserAuthorized, user.ID, events.UserAuthorizedPayload{
		Answer:   answer,
		OldState: from,
		NewState: to,
	})
	return user, nil
}

// SetInReview unconditionally moves an account to IN_REVIEW. A missing
// account is a silent no-op. Safe to call repeatedly.
func (s *UserService) SetInReview(ctx context.Context, userID string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}

	user.State = domain.UserStateInReview
	return s.users.Update(ctx, user)
}

// VerifyEmail redeems a one-time verification code and moves its owner to
// IN_REVIEW. Codes are single use; an unknown or expired code is rejected.
func (s *UserService) VerifyEmail(ctx context.Context, code string) error {
	userID, err := s.codes.Consume(ctx, code)
	if err != nil {
		if errors.Is(err, verification.ErrCodeNotFound) {
			return apperrors.NewInvalidToken()
		}
		return err
	}

	if err := s.SetInReview(ctx, userID); err != nil {
		return err
	}
	s.publish(ctx, events.EventUserVerified, userID, nil)
	return nil
}

// ListCustomers returns accounts in a usable state (ACTIVE or INACTIVE).
func (s *UserService) ListCustomers(ctx context.Context) ([]*domain.User, error) {
	return s.users.ListByStates(ctx, domain.CustomerStates)
}

// ListUsersOnWait returns accounts awaiting verification or review.
func (s *UserService) ListUsersOnWait(ctx context.Context) ([]*domain.User, error) {
	return s.users.ListByStates(ctx, domain.StatesOnWait)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *UserService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *UserService) publish(ctx context.Context, eventType events.EventType, userID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
