package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/hr-service/internal/domain"
	"github.com/spec-kit/hr-service/internal/repository"
	"github.com/spec-kit/hr-service/internal/service"
)

type fakePermitRepo struct {
	byID map[string]*domain.Permit
}

func newFakePermitRepo() *fakePermitRepo {
	return &fakePermitRepo{byID: map[string]*domain.Permit{}}
}

func (r *fakePermitRepo) Create(_ context.Context, permit *domain.Permit) error {
	permit.ID = uuid.NewString()
	copied := *permit
	r.byID[permit.ID] = &copied
	return nil
}

func (r *fakePermitRepo) Update(_ context.Context, permit *domain.Permit) error {
	if _, exists := r.byID[permit.ID]; !exists {
		return pgx.ErrNoRows
	}
	copied := *permit
	r.byID[permit.ID] = &copied
	return nil
}

func (r *fakePermitRepo) GetByID(_ context.Context, id string) (*domain.Permit, error) {
	permit, exists := r.byID[id]
	if !exists {
		return nil, pgx.ErrNoRows
	}
	copied := *permit
	return &copied, nil
}

func (r *fakePermitRepo) ListByState(_ context.Context, state domain.PermitState) ([]*domain.Permit, error) {
	permits := make([]*domain.Permit, 0)
	for _, permit := range r.byID {
		if permit.State == state {
			copied := *permit
			permits = append(permits, &copied)
		}
	}
	return permits, nil
}

var _ repository.PermitRepository = (*fakePermitRepo)(nil)

func newManagerFixture() (*service.ManagerService, *fakeUserRepo, *fakePermitRepo) {
	users := newFakeUserRepo()
	permits := newFakePermitRepo()
	svc := service.NewManagerService(service.ManagerDependencies{
		UserRepo:   users,
		PermitRepo: permits,
	})
	return svc, users, permits
}

func seedPermit(t *testing.T, permits *fakePermitRepo, userID string) *domain.Permit {
	t.Helper()
	permit := &domain.Permit{
		UserID:    userID,
		Type:      domain.PermitTypeAnnual,
		StartDate: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		State:     domain.PermitStatePending,
	}
	require.NoError(t, permits.Create(context.Background(), permit))
	return permit
}

func TestRequestPermitStartsPending(t *testing.T) {
	svc, _, _ := newManagerFixture()

	permit, err := svc.RequestPermit(context.Background(), uuid.NewString(), service.PermitInput{
		Type:      domain.PermitTypeSick,
		StartDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PermitStatePending, permit.State)
	assert.NotEmpty(t, permit.ID)
}

func TestRequestPermitRejectsInvertedDates(t *testing.T) {
	svc, _, _ := newManagerFixture()

	_, err := svc.RequestPermit(context.Background(), uuid.NewString(), service.PermitInput{
		Type:      domain.PermitTypeAnnual,
		StartDate: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	})
	require.Error(t, err)
}

func TestAuthorizePermitAcceptApproves(t *testing.T) {
	svc, _, permits := newManagerFixture()
	permit := seedPermit(t, permits, uuid.NewString())

	ok, err := svc.AuthorizePermit(context.Background(), permit.ID, "accept")
	require.NoError(t, err)
	assert.True(t, ok)

	stored, err := permits.GetByID(context.Background(), permit.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PermitStateApproved, stored.State)
}

func TestAuthorizePermitDenyRejects(t *testing.T) {
	svc, _, permits := newManagerFixture()
	permit := seedPermit(t, permits, uuid.NewString())

	ok, err := svc.AuthorizePermit(context.Background(), permit.ID, "DENY")
	require.NoError(t, err)
	assert.True(t, ok)

	stored, err := permits.GetByID(context.Background(), permit.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PermitStateRejected, stored.State)
}

func TestAuthorizePermitUnknownAnswerFails(t *testing.T) {
	svc, _, permits := newManagerFixture()
	permit := seedPermit(t, permits, uuid.NewString())

	_, err := svc.AuthorizePermit(context.Background(), permit.ID, "shrug")
	require.Error(t, err)

	stored, err := permits.GetByID(context.Background(), permit.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PermitStatePending, stored.State)
}

func TestAuthorizePermitMissingPermitFails(t *testing.T) {
	svc, _, _ := newManagerFixture()

	_, err := svc.AuthorizePermit(context.Background(), uuid.NewString(), "accept")
	require.Error(t, err)
}

func TestEmployeesByCompanyFilters(t *testing.T) {
	svc, users, _ := newManagerFixture()

	companyA := uuid.NewString()
	companyB := uuid.NewString()

	for i, companyID := range []string{companyA, companyA, companyB} {
		user := &domain.User{
			CompanyID:    &companyID,
			Name:         "Employee",
			Email:        uuid.NewString() + "@example.com",
			PasswordHash: "x",
			State:        domain.UserStateActive,
		}
		require.NoError(t, users.Create(context.Background(), user), "seed %d", i)
	}

	employees, err := svc.EmployeesByCompany(context.Background(), companyA)
	require.NoError(t, err)
	assert.Len(t, employees, 2)
}
