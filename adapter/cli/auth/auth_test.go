package auth

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/stratus/internal/identity/application"
	"github.com/felixgeelhaar/stratus/internal/identity/domain"
)

type fakeStore struct {
	token string
}

func (s *fakeStore) Get(_ context.Context) (string, error) { return s.token, nil }
func (s *fakeStore) Set(_ context.Context, token string) error {
	s.token = token
	return nil
}
func (s *fakeStore) Clear(_ context.Context) error {
	s.token = ""
	return nil
}

type fakeGateway struct {
	user *domain.User
}

func (g *fakeGateway) Register(_ context.Context, email, _ string) (*domain.Session, error) {
	g.user = &domain.User{ID: 1, Email: email, IsTrialActive: true, TrialDaysLeft: 14}
	return &domain.Session{Token: "tok-register", User: g.user}, nil
}

func (g *fakeGateway) Login(_ context.Context, email, _ string) (*domain.Session, error) {
	g.user = &domain.User{ID: 1, Email: email, IsTrialActive: true, TrialDaysLeft: 7}
	return &domain.Session{Token: "tok-login", User: g.user}, nil
}

func (g *fakeGateway) CurrentUser(_ context.Context, _ string) (*domain.User, error) {
	return g.user, nil
}

func (g *fakeGateway) Redeem(_ context.Context, _, _, _ string) (*domain.RedeemResult, error) {
	return &domain.RedeemResult{User: g.user}, nil
}

func (g *fakeGateway) CheckAccess(_ context.Context, _, _ string) (*domain.AccessCheck, error) {
	return &domain.AccessCheck{Allowed: true}, nil
}

func newTestService() (*application.Service, *fakeStore) {
	store := &fakeStore{}
	return application.NewService(&fakeGateway{}, store, slog.Default()), store
}

func runCommand(t *testing.T, run func(cmd *cobra.Command, args []string) error) string {
	t.Helper()
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetContext(context.Background())
	require.NoError(t, run(cmd, nil))
	return buf.String()
}

func TestLoginCommand_SignsInAndPersists(t *testing.T) {
	svc, store := newTestService()
	SetService(svc)
	defer SetService(nil)

	loginEmail = "user@example.com"
	loginPassword = "secret"

	out := runCommand(t, runLogin)

	assert.Contains(t, out, "Signed in as user@example.com")
	assert.Contains(t, out, "Trial active: 7 days")
	assert.Equal(t, "tok-login", store.token)
	assert.True(t, svc.IsAuthenticated())
}

func TestRegisterCommand_CreatesAccount(t *testing.T) {
	svc, _ := newTestService()
	SetService(svc)
	defer SetService(nil)

	registerEmail = "new@example.com"
	registerPassword = "secret"
	registerConfirm = "secret"

	out := runCommand(t, runRegister)

	assert.Contains(t, out, "Account created for new@example.com")
	assert.Contains(t, out, "14 days")
}

func TestRegisterCommand_PasswordMismatchIsLocal(t *testing.T) {
	svc, _ := newTestService()
	SetService(svc)
	defer SetService(nil)

	registerEmail = "new@example.com"
	registerPassword = "secret"
	registerConfirm = "different"

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetContext(context.Background())

	err := runRegister(cmd, nil)
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)
}

func TestWhoamiCommand_NotSignedIn(t *testing.T) {
	svc, _ := newTestService()
	SetService(svc)
	defer SetService(nil)

	out := runCommand(t, runWhoami)

	assert.Contains(t, out, "Not signed in")
	assert.Contains(t, out, "stratus auth login")
}

func TestLogoutCommand_ClearsSession(t *testing.T) {
	svc, store := newTestService()
	SetService(svc)
	defer SetService(nil)

	loginEmail = "user@example.com"
	loginPassword = "secret"
	runCommand(t, runLogin)
	require.Equal(t, "tok-login", store.token)

	out := runCommand(t, logoutCmd.RunE)

	assert.Contains(t, out, "Signed out")
	assert.Empty(t, store.token)
	assert.False(t, svc.IsAuthenticated())
}

func TestCommands_FailWithoutService(t *testing.T) {
	SetService(nil)

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetContext(context.Background())

	assert.Error(t, runLogin(cmd, nil))
	assert.Error(t, runWhoami(cmd, nil))
}
