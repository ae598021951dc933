package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/felixgeelhaar/stratus/internal/dashboard/domain"
	"github.com/felixgeelhaar/stratus/internal/gateway"
)

var (
	// ErrAccessDenied indicates the user has no entitlement for the
	// requested module; the rendering layer opens the redemption flow.
	ErrAccessDenied = errors.New("access to this module requires an active trial or a sponsor code")

	// ErrFetchInFlight indicates a feed fetch is still being processed.
	ErrFetchInFlight = errors.New("dashboard fetch already in progress")
)

// TrialWarningThreshold is the remaining-days level at or below which the
// home screen shows the expiration warning.
const TrialWarningThreshold = 3

// AccessPolicy is the slice of the auth state machine the controller
// consumes. Decisions are recomputed on every call, never cached here.
type AccessPolicy interface {
	CanAccessModule(module string) bool
	TrialDaysRemaining() (int, bool)
	Redeem(ctx context.Context, code, module string) error
}

// Feed fetches the module-agnostic indicator feed and the sponsor pages.
type Feed interface {
	Dashboard(ctx context.Context) ([]domain.Metric, error)
	SponsorLinks(ctx context.Context) (domain.SponsorLinks, error)
}

// View identifies the active screen.
type View struct {
	// Module is empty on the home screen.
	Module domain.Module
}

// IsHome reports whether the home screen is active.
func (v View) IsHome() bool {
	return v.Module == ""
}

// Screen is what the rendering layer draws for one module view.
type Screen struct {
	Module domain.Module
	Groups domain.Groups

	// Unavailable is set when the feed could not be loaded; the renderer
	// shows a neutral empty state instead of stale or fabricated data.
	Unavailable bool
}

// ModuleCard summarizes one dashboard on the home screen.
type ModuleCard struct {
	Module     domain.Module
	Name       string
	Accessible bool
	Sponsor    domain.SponsorLink
}

// HomeScreen is the home view model.
type HomeScreen struct {
	Cards            []ModuleCard
	TrialDaysLeft    int
	TrialKnown       bool
	ShowTrialWarning bool
}

// Controller orchestrates the screens: it gates module entry on the auth
// state machine's entitlement decision, owns the fetched feed for the
// lifetime of the process, and hands composed groups to the renderer.
//
// The feed is module-agnostic, so it is fetched once and reused across
// module switches; Compose alone differentiates views.
type Controller struct {
	auth   AccessPolicy
	feed   Feed
	logger *slog.Logger

	mu          sync.Mutex
	view        View
	metrics     []domain.Metric
	fetched     bool
	fetchFailed bool
	loading     bool
	generation  uint64
	links       domain.SponsorLinks
}

// NewController creates the view controller on the home screen.
func NewController(auth AccessPolicy, feed Feed, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		auth:   auth,
		feed:   feed,
		logger: logger,
	}
}

// OpenModule transitions to a module dashboard. A denied entitlement
// returns ErrAccessDenied without fetching anything. A feed that cannot
// be reached degrades to an empty, explicitly unavailable screen.
func (c *Controller) OpenModule(ctx context.Context, module domain.Module) (*Screen, error) {
	if !c.auth.CanAccessModule(module.String()) {
		return nil, ErrAccessDenied
	}

	metrics, unavailable, err := c.ensureFeed(ctx, false)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.view = View{Module: module}
	c.mu.Unlock()

	return &Screen{
		Module:      module,
		Groups:      Compose(metrics, module),
		Unavailable: unavailable,
	}, nil
}

// RedeemAndOpen redeems a sponsor code for the module, re-evaluates the
// entitlement, and opens the dashboard only if access is now granted.
func (c *Controller) RedeemAndOpen(ctx context.Context, code string, module domain.Module) (*Screen, error) {
	if err := c.auth.Redeem(ctx, code, module.String()); err != nil {
		return nil, err
	}
	return c.OpenModule(ctx, module)
}

// Refresh forces a re-fetch of the feed and re-renders the current module
// view, or just refreshes the cache when the home screen is active.
func (c *Controller) Refresh(ctx context.Context) (*Screen, error) {
	metrics, unavailable, err := c.ensureFeed(ctx, true)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	view := c.view
	c.mu.Unlock()

	if view.IsHome() {
		return nil, nil
	}
	return &Screen{
		Module:      view.Module,
		Groups:      Compose(metrics, view.Module),
		Unavailable: unavailable,
	}, nil
}

// Home builds the home screen and makes it the active view. Sponsor links
// are fetched once, best effort; the home screen renders without them.
func (c *Controller) Home(ctx context.Context) *HomeScreen {
	links := c.sponsorLinks(ctx)

	cards := make([]ModuleCard, 0, len(domain.Modules()))
	for _, m := range domain.Modules() {
		cards = append(cards, ModuleCard{
			Module:     m,
			Name:       m.DisplayName(),
			Accessible: c.auth.CanAccessModule(m.String()),
			Sponsor:    links[m.String()],
		})
	}

	days, known := c.auth.TrialDaysRemaining()

	c.mu.Lock()
	c.view = View{}
	c.mu.Unlock()

	return &HomeScreen{
		Cards:            cards,
		TrialDaysLeft:    days,
		TrialKnown:       known,
		ShowTrialWarning: known && days <= TrialWarningThreshold,
	}
}

// CurrentView returns the active screen identifier.
func (c *Controller) CurrentView() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Reset drops the cached feed and sponsor links and returns to the home
// screen. Called on logout; any response still in flight is discarded via
// the generation tag.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.view = View{}
	c.metrics = nil
	c.fetched = false
	c.fetchFailed = false
	c.links = nil
}

// ensureFeed returns the cached feed, fetching it when absent or when
// force is set. A transport-level failure degrades to an empty feed (the
// unavailable flag) rather than an error; business failures surface once.
func (c *Controller) ensureFeed(ctx context.Context, force bool) ([]domain.Metric, bool, error) {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return nil, false, ErrFetchInFlight
	}
	if c.fetched && !force {
		metrics, failed := c.metrics, c.fetchFailed
		c.mu.Unlock()
		return metrics, failed, nil
	}
	c.loading = true
	gen := c.generation
	c.mu.Unlock()

	metrics, err := c.feed.Dashboard(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if gen != c.generation {
		// The session was reset while the fetch was in flight; do not let
		// the stale response overwrite newer state.
		c.logger.Debug("discarding stale feed response", "generation", gen)
		return nil, false, ErrFetchInFlight
	}

	if err != nil {
		if errors.Is(err, gateway.ErrNetworkUnavailable) {
			c.logger.Warn("dashboard feed unavailable", "error", err)
			c.metrics = nil
			c.fetched = true
			c.fetchFailed = true
			return nil, true, nil
		}
		return nil, false, fmt.Errorf("fetch dashboard feed: %w", err)
	}

	c.metrics = metrics
	c.fetched = true
	c.fetchFailed = false
	return metrics, false, nil
}

func (c *Controller) sponsorLinks(ctx context.Context) domain.SponsorLinks {
	c.mu.Lock()
	if c.links != nil {
		links := c.links
		c.mu.Unlock()
		return links
	}
	c.mu.Unlock()

	links, err := c.feed.SponsorLinks(ctx)
	if err != nil {
		c.logger.Warn("failed to fetch sponsor links", "error", err)
		return nil
	}

	c.mu.Lock()
	c.links = links
	c.mu.Unlock()
	return links
}
