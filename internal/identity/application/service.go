// Package application owns the authentication state machine: session
// restore, login, registration, logout, and sponsor-code redemption, plus
// the entitlement queries derived from the current user snapshot.
package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/felixgeelhaar/stratus/internal/gateway"
	"github.com/felixgeelhaar/stratus/internal/identity/domain"
)

// State names the auth lifecycle phase.
type State string

const (
	// StateUninitialized is the state before the first Restore.
	StateUninitialized State = "uninitialized"
	// StateRestoring is the transient state while a stored token is being
	// validated against the backend.
	StateRestoring State = "restoring"
	// StateAuthenticated means a token is held and its last validation
	// succeeded.
	StateAuthenticated State = "authenticated"
	// StateAnonymous means no valid session exists.
	StateAnonymous State = "anonymous"
)

// Gateway is the backend surface the state machine drives.
type Gateway interface {
	Register(ctx context.Context, email, password string) (*domain.Session, error)
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
	Redeem(ctx context.Context, token, code, module string) (*domain.RedeemResult, error)
	CheckAccess(ctx context.Context, token, module string) (*domain.AccessCheck, error)
}

// Service is the authentication state machine. It is constructed once at
// process start and injected into every component that needs an
// entitlement decision; there is no ambient global auth state.
//
// All transitions carry a generation tag: a response that completes after
// a later transition has already committed is discarded rather than
// overwriting newer state.
type Service struct {
	gateway Gateway
	store   domain.SessionStore
	logger  *slog.Logger

	mu         sync.Mutex
	state      State
	user       *domain.User
	token      string
	generation uint64
	inFlight   bool
}

// NewService creates the state machine in the Uninitialized state.
func NewService(gw Gateway, store domain.SessionStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		gateway: gw,
		store:   store,
		logger:  logger,
		state:   StateUninitialized,
	}
}

// Restore reads the session store and validates any stored token. Every
// path ends in Authenticated or Anonymous; an invalid token is cleared
// from the store. Restore failures are not surfaced as errors: the user
// simply starts anonymous.
func (s *Service) Restore(ctx context.Context) error {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return domain.ErrRequestInFlight
	}
	s.inFlight = true
	s.state = StateRestoring
	gen := s.generation
	s.mu.Unlock()

	token, err := s.store.Get(ctx)
	if err != nil {
		// Store unavailable: fail open to logged out.
		s.logger.Warn("session store unavailable", "error", err)
		token = ""
	}

	if token == "" {
		s.settle(gen, StateAnonymous, nil, "")
		return nil
	}

	user, err := s.gateway.CurrentUser(ctx, token)
	if err != nil {
		s.logger.Info("stored session rejected, clearing", "error", err)
		if clearErr := s.store.Clear(ctx); clearErr != nil {
			s.logger.Warn("failed to clear session store", "error", clearErr)
		}
		s.settle(gen, StateAnonymous, nil, "")
		return nil
	}

	s.settle(gen, StateAuthenticated, user, token)
	return nil
}

// Login validates the credentials locally, then exchanges them for a
// session. On failure the prior state is left fully unchanged.
func (s *Service) Login(ctx context.Context, rawEmail, rawPassword string) error {
	email, err := domain.NewEmail(rawEmail)
	if err != nil {
		return err
	}
	password, err := domain.NewPassword(rawPassword)
	if err != nil {
		return err
	}

	if !s.begin() {
		return domain.ErrRequestInFlight
	}

	session, err := s.gateway.Login(ctx, email.String(), password.String())
	if err != nil {
		s.abort()
		return err
	}

	s.persistToken(ctx, session.Token)
	s.commit(StateAuthenticated, session.User, session.Token)
	s.logger.Info("logged in", "email", email.String())
	return nil
}

// Register validates locally (including the optional confirmation), then
// creates the account. A successful registration starts an authenticated
// session immediately.
func (s *Service) Register(ctx context.Context, rawEmail, rawPassword, confirm string) error {
	email, err := domain.NewEmail(rawEmail)
	if err != nil {
		return err
	}
	password, err := domain.NewPassword(rawPassword)
	if err != nil {
		return err
	}
	if confirm != "" && confirm != rawPassword {
		return domain.ErrPasswordMismatch
	}

	if !s.begin() {
		return domain.ErrRequestInFlight
	}

	session, err := s.gateway.Register(ctx, email.String(), password.String())
	if err != nil {
		s.abort()
		return err
	}

	s.persistToken(ctx, session.Token)
	s.commit(StateAuthenticated, session.User, session.Token)
	s.logger.Info("registered", "email", email.String())
	return nil
}

// Logout clears the stored session and transitions to Anonymous. It is
// idempotent and supersedes any in-flight restore or fetch.
func (s *Service) Logout(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		s.logger.Warn("failed to clear session store", "error", err)
	}
	s.commit(StateAnonymous, nil, "")
}

// Redeem exchanges a sponsor code for permanent access to a module. Only
// meaningful while authenticated; on success the user snapshot is replaced
// with the server's updated record and the token is preserved unless the
// server rotated it.
func (s *Service) Redeem(ctx context.Context, code, module string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return domain.ErrEmptyCode
	}

	s.mu.Lock()
	if s.state != StateAuthenticated {
		s.mu.Unlock()
		return domain.ErrNotAuthenticated
	}
	if s.inFlight {
		s.mu.Unlock()
		return domain.ErrRequestInFlight
	}
	s.inFlight = true
	token := s.token
	s.mu.Unlock()

	result, err := s.gateway.Redeem(ctx, token, code, module)
	if err != nil {
		s.abort()
		return err
	}

	if result.Token != "" && result.Token != token {
		token = result.Token
		s.persistToken(ctx, token)
	}
	s.commit(StateAuthenticated, result.User, token)
	s.logger.Info("sponsor code redeemed", "module", module)
	return nil
}

// RefreshUser re-fetches the entitlement record for the current session.
// A rejected token forces the Anonymous state and clears the store; any
// other failure leaves state unchanged.
func (s *Service) RefreshUser(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateAuthenticated {
		s.mu.Unlock()
		return domain.ErrNotAuthenticated
	}
	if s.inFlight {
		s.mu.Unlock()
		return domain.ErrRequestInFlight
	}
	s.inFlight = true
	token := s.token
	s.mu.Unlock()

	user, err := s.gateway.CurrentUser(ctx, token)
	if err != nil {
		if errors.Is(err, gateway.ErrUnauthorized) {
			if clearErr := s.store.Clear(ctx); clearErr != nil {
				s.logger.Warn("failed to clear session store", "error", clearErr)
			}
			s.commit(StateAnonymous, nil, "")
			return err
		}
		s.abort()
		return err
	}

	s.commit(StateAuthenticated, user, token)
	return nil
}

// CheckAccess asks the server for its advisory decision on a module. The
// local CanAccessModule answer remains binding for gating.
func (s *Service) CheckAccess(ctx context.Context, module string) (*domain.AccessCheck, error) {
	s.mu.Lock()
	if s.state != StateAuthenticated {
		s.mu.Unlock()
		return nil, domain.ErrNotAuthenticated
	}
	token := s.token
	s.mu.Unlock()

	return s.gateway.CheckAccess(ctx, token, module)
}

// CanAccessModule is the binding entitlement decision, recomputed from the
// current user snapshot on every call.
func (s *Service) CanAccessModule(module string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.CanAccessModule(module)
}

// TrialDaysRemaining returns the remaining trial days and whether a user
// is present at all. With an inactive trial it reports 0 regardless of the
// stored counter.
func (s *Service) TrialDaysRemaining() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return 0, false
	}
	return s.user.TrialDaysRemaining(), true
}

// CurrentUser returns the current user snapshot. Callers must treat it as
// read-only.
func (s *Service) CurrentUser() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// State returns the current lifecycle phase.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsAuthenticated reports whether a validated session is held.
func (s *Service) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// begin marks a user-triggered request as in flight, suppressing double
// submission while a previous request is still settling.
func (s *Service) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return false
	}
	s.inFlight = true
	return true
}

// abort releases the in-flight guard without touching state: a failed
// request must not partially apply.
func (s *Service) abort() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
}

// commit applies a transition and starts a new generation, invalidating
// any response still in flight from before.
func (s *Service) commit(state State, user *domain.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	s.generation++
	s.state = state
	s.user = user
	s.token = token
}

// settle applies the outcome of a tagged request, unless a newer
// transition has already committed, in which case the stale response is
// dropped.
func (s *Service) settle(gen uint64, state State, user *domain.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	if gen != s.generation {
		s.logger.Debug("discarding stale auth response", "generation", gen)
		return
	}
	s.state = state
	s.user = user
	s.token = token
}

func (s *Service) persistToken(ctx context.Context, token string) {
	if err := s.store.Set(ctx, token); err != nil {
		// The session still works for this process; it just won't survive
		// a restart.
		s.logger.Warn("failed to persist session token", "error", err)
	}
}
