package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authUsecases "github.com/chamados/servicedesk/internal/application/auth/usecases"
	"github.com/chamados/servicedesk/internal/domain/loginguard"
	"github.com/chamados/servicedesk/internal/domain/user"
	"github.com/chamados/servicedesk/internal/infrastructure/repository"
	"github.com/chamados/servicedesk/internal/infrastructure/storage"
	"github.com/chamados/servicedesk/internal/shared/authorization"
	"github.com/chamados/servicedesk/internal/shared/clock"
	"github.com/chamados/servicedesk/internal/shared/config"
	"github.com/chamados/servicedesk/internal/shared/errors"
	"github.com/chamados/servicedesk/internal/shared/logger"
)

var (
	testStart  = time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
	adminActor = authorization.Actor{ID: 1, Name: "Administrator", Role: authorization.RoleAdmin}
)

type userFixture struct {
	users  user.Repository
	ledger loginguard.LedgerRepository
	audit  loginguard.AuditRepository
	clock  *clock.Fake
	log    logger.Interface
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()
	backend := storage.NewMemoryBackend()
	clk := clock.NewFake(testStart)
	log := logger.NewNopLogger()
	bootstrap := config.BootstrapConfig{AdminName: "Administrator", AdminLogin: "admin", AdminPassword: "admin"}
	return &userFixture{
		users:  repository.NewUserRepository(backend, bootstrap, clk, log),
		ledger: repository.NewLoginAttemptRepository(backend),
		audit:  repository.NewLoginAuditRepository(backend, 2000),
		clock:  clk,
		log:    log,
	}
}

func (f *userFixture) create(t *testing.T, name, login, role string) int64 {
	t.Helper()
	f.clock.Advance(time.Second)
	created, err := NewCreateUserUseCase(f.users, f.clock, f.log).Execute(context.Background(), CreateUserCommand{
		Name: name, Login: login, Password: "pw", Role: role,
	})
	require.NoError(t, err)
	return created.ID
}

func requireErrType(t *testing.T, err error, want errors.ErrorType, code int) {
	t.Helper()
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr, "expected an AppError, got %v", err)
	assert.Equal(t, want, appErr.Type)
	assert.Equal(t, code, appErr.Code)
}

func TestCreateUser(t *testing.T) {
	f := newUserFixture(t)
	uc := NewCreateUserUseCase(f.users, f.clock, f.log)
	ctx := context.Background()

	created, err := uc.Execute(ctx, CreateUserCommand{Name: "Bia", Login: "bia", Password: "pw", Role: "analyst"})
	require.NoError(t, err)
	assert.Equal(t, testStart.UnixMilli(), created.ID)
	assert.True(t, created.Active)

	t.Run("duplicate login in another case", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateUserCommand{Name: "Bia 2", Login: "BIA", Password: "pw", Role: "analyst"})
		requireErrType(t, err, errors.ErrorTypeConflict, 400)
	})
	t.Run("invalid role", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateUserCommand{Name: "C", Login: "c", Password: "pw", Role: "owner"})
		requireErrType(t, err, errors.ErrorTypeValidation, 400)
	})
	t.Run("missing password", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateUserCommand{Name: "C", Login: "c", Role: "admin"})
		requireErrType(t, err, errors.ErrorTypeValidation, 400)
	})
}

func TestListUsers_SortedByNameWithoutPasswords(t *testing.T) {
	f := newUserFixture(t)
	f.create(t, "Zé", "ze", "analyst")
	f.create(t, "Ávila", "avila", "analyst")
	f.create(t, "bruno", "bruno", "admin")

	users, err := NewListUsersUseCase(f.users, f.log).Execute(context.Background())

	require.NoError(t, err)
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Name)
	}
	assert.Equal(t, []string{"Administrator", "Ávila", "bruno", "Zé"}, names)
}

func TestChangePassword(t *testing.T) {
	f := newUserFixture(t)
	id := f.create(t, "Bia", "bia", "analyst")
	uc := NewChangePasswordUseCase(f.users, f.clock, f.log)

	require.NoError(t, uc.Execute(context.Background(), ChangePasswordCommand{UserID: id, Password: "n3w"}))
	u, err := f.users.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, u.PasswordMatches("n3w"))

	requireErrType(t, uc.Execute(context.Background(), ChangePasswordCommand{UserID: id}), errors.ErrorTypeValidation, 400)
	requireErrType(t, uc.Execute(context.Background(), ChangePasswordCommand{UserID: 999, Password: "x"}), errors.ErrorTypeNotFound, 404)
}

func TestChangeRole(t *testing.T) {
	f := newUserFixture(t)
	id := f.create(t, "Bia", "bia", "analyst")
	uc := NewChangeRoleUseCase(f.users, f.clock, f.log)
	ctx := context.Background()

	updated, err := uc.Execute(ctx, ChangeRoleCommand{UserID: id, Role: "admin", Actor: adminActor})
	require.NoError(t, err)
	assert.Equal(t, "admin", updated.Role)

	_, err = uc.Execute(ctx, ChangeRoleCommand{UserID: adminActor.ID, Role: "analyst", Actor: adminActor})
	requireErrType(t, err, errors.ErrorTypeForbidden, 403)

	_, err = uc.Execute(ctx, ChangeRoleCommand{UserID: id, Role: "root", Actor: adminActor})
	requireErrType(t, err, errors.ErrorTypeValidation, 400)
}

func TestSetActive(t *testing.T) {
	f := newUserFixture(t)
	id := f.create(t, "Bia", "bia", "analyst")
	uc := NewSetActiveUseCase(f.users, f.clock, f.log)
	ctx := context.Background()

	updated, err := uc.Execute(ctx, SetActiveCommand{UserID: id, Active: false, Actor: adminActor})
	require.NoError(t, err)
	assert.False(t, updated.Active)

	_, err = uc.Execute(ctx, SetActiveCommand{UserID: adminActor.ID, Active: false, Actor: adminActor})
	requireErrType(t, err, errors.ErrorTypeForbidden, 403)

	self, err := uc.Execute(ctx, SetActiveCommand{UserID: adminActor.ID, Active: true, Actor: adminActor})
	require.NoError(t, err)
	assert.True(t, self.Active)
}

func TestDeleteUser_PurgesLedger(t *testing.T) {
	f := newUserFixture(t)
	id := f.create(t, "Bia", "bia", "analyst")
	ctx := context.Background()
	require.NoError(t, f.ledger.Update(ctx, "bia", func(e loginguard.Entry) (loginguard.Entry, error) {
		e, _ = loginguard.DefaultPolicy().RecordFailure(f.clock.Now(), e)
		return e, nil
	}))

	uc := NewDeleteUserUseCase(f.users, f.ledger, f.log)
	require.NoError(t, uc.Execute(ctx, DeleteUserCommand{UserID: id, Actor: adminActor}))

	entries, err := f.ledger.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = f.users.GetByID(ctx, id)
	requireErrType(t, err, errors.ErrorTypeNotFound, 404)

	requireErrType(t, uc.Execute(ctx, DeleteUserCommand{UserID: adminActor.ID, Actor: adminActor}), errors.ErrorTypeForbidden, 403)
	requireErrType(t, uc.Execute(ctx, DeleteUserCommand{UserID: id, Actor: adminActor}), errors.ErrorTypeNotFound, 404)
}

func TestDeleteUser_LaterLoginIsUnknownUser(t *testing.T) {
	f := newUserFixture(t)
	id := f.create(t, "Bia", "bia", "analyst")
	ctx := context.Background()

	securityLog := authUsecases.NewSecurityLog(f.audit, nil, f.clock, f.log)
	login := authUsecases.NewLoginUseCase(
		f.users, f.ledger, securityLog, stubTokenIssuer{}, nil, loginguard.DefaultPolicy(), f.clock, f.log,
	)
	attempt := func(password string) error {
		_, err := login.Execute(ctx, authUsecases.LoginCommand{Login: "bia", Password: password, SourceIP: "10.0.0.4"})
		return err
	}

	// one failure before the delete leaves a ledger entry behind
	requireErrType(t, attempt("wrong"), errors.ErrorTypeInvalidCredentials, 401)
	require.NoError(t, NewDeleteUserUseCase(f.users, f.ledger, f.log).Execute(ctx, DeleteUserCommand{UserID: id, Actor: adminActor}))

	requireErrType(t, attempt("pw"), errors.ErrorTypeInvalidCredentials, 401)

	events, err := f.audit.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, loginguard.OutcomeInvalidCredentials, events[0].Outcome)
	assert.Equal(t, loginguard.DetailUserNotFound, events[0].Detail)
	assert.Nil(t, events[0].UserID)

	entries, err := f.ledger.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "bia", entries[0].Login)
	assert.Equal(t, 1, entries[0].FailCount, "the count restarts on a fresh ledger")
}

func TestUnlockUser_ResolvesLogin(t *testing.T) {
	f := newUserFixture(t)
	id := f.create(t, "Bia", "Bia.S", "analyst")

	var got authUsecases.UnlockLoginCommand
	uc := NewUnlockUserUseCase(f.users, &mockUnlockLogin{
		ExecuteFunc: func(_ context.Context, cmd authUsecases.UnlockLoginCommand) error {
			got = cmd
			return nil
		},
	}, f.log)

	require.NoError(t, uc.Execute(context.Background(), UnlockUserCommand{UserID: id, Actor: adminActor}))
	assert.Equal(t, "Bia.S", got.Login)
	assert.Equal(t, adminActor, got.Actor)

	err := uc.Execute(context.Background(), UnlockUserCommand{UserID: 404, Actor: adminActor})
	requireErrType(t, err, errors.ErrorTypeNotFound, 404)
}
