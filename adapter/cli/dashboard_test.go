package cli

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dashboardApp "github.com/felixgeelhaar/stratus/internal/dashboard/application"
	"github.com/felixgeelhaar/stratus/internal/dashboard/domain"
)

type stubPolicy struct {
	accessible map[string]bool
	trialDays  int
	trialKnown bool
}

func (p *stubPolicy) CanAccessModule(module string) bool { return p.accessible[module] }
func (p *stubPolicy) TrialDaysRemaining() (int, bool)    { return p.trialDays, p.trialKnown }

func (p *stubPolicy) Redeem(_ context.Context, _ string, module string) error {
	p.accessible[module] = true
	return nil
}

type stubFeed struct {
	metrics []domain.Metric
	links   domain.SponsorLinks
}

func (f *stubFeed) Dashboard(context.Context) ([]domain.Metric, error) { return f.metrics, nil }
func (f *stubFeed) SponsorLinks(context.Context) (domain.SponsorLinks, error) {
	return f.links, nil
}

func newCommandBuffer() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetContext(context.Background())
	return cmd, &buf
}

func TestRunDashboard_LockedModuleExplainsRedemption(t *testing.T) {
	policy := &stubPolicy{accessible: map[string]bool{}}
	SetController(dashboardApp.NewController(policy, &stubFeed{}, slog.Default()))
	defer SetController(nil)

	cmd, buf := newCommandBuffer()
	err := runDashboard(cmd, []string{"metals"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Precious Metals Station is locked")
	assert.Contains(t, buf.String(), "stratus sponsor redeem <code> --module metals")
}

func TestRunDashboard_RendersTiers(t *testing.T) {
	policy := &stubPolicy{accessible: map[string]bool{"growth": true}}
	feed := &stubFeed{metrics: []domain.Metric{
		{ID: "dgs10", Name: "10Y Treasury", Value: 4.25, Unit: "%", StatusColor: domain.StatusWarning, StatusText: "elevated"},
	}}
	SetController(dashboardApp.NewController(policy, feed, slog.Default()))
	defer SetController(nil)

	cmd, buf := newCommandBuffer()
	err := runDashboard(cmd, []string{"growth"})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Growth Index Station")
	assert.Contains(t, out, "Tier 1")
	assert.Contains(t, out, "10Y Treasury")
	assert.Contains(t, out, "elevated")
}

func TestRunDashboard_CodeRedeemsAndOpens(t *testing.T) {
	policy := &stubPolicy{accessible: map[string]bool{}}
	feed := &stubFeed{metrics: []domain.Metric{
		{ID: "gold_index", Name: "Gold Index", Value: 2400, Unit: "USD"},
	}}
	SetController(dashboardApp.NewController(policy, feed, slog.Default()))
	defer SetController(nil)

	dashboardCode = "SPONSOR-2024-XYZ"
	defer func() { dashboardCode = "" }()

	cmd, buf := newCommandBuffer()
	err := runDashboard(cmd, []string{"metals"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Precious Metals Station")
	assert.Contains(t, buf.String(), "Gold Index")
	assert.True(t, policy.accessible["metals"])
}

func TestRunDashboard_UnknownModule(t *testing.T) {
	SetController(dashboardApp.NewController(&stubPolicy{accessible: map[string]bool{}}, &stubFeed{}, slog.Default()))
	defer SetController(nil)

	cmd, _ := newCommandBuffer()
	err := runDashboard(cmd, []string{"bonds"})

	assert.ErrorIs(t, err, domain.ErrUnknownModule)
}

func TestRunHome_ListsStationsAndTrial(t *testing.T) {
	policy := &stubPolicy{
		accessible: map[string]bool{"growth": true},
		trialDays:  2,
		trialKnown: true,
	}
	feed := &stubFeed{links: domain.SponsorLinks{
		"broad": {Name: "Beta Fund", Link: "https://example.com/beta"},
	}}
	SetController(dashboardApp.NewController(policy, feed, slog.Default()))
	defer SetController(nil)

	cmd, buf := newCommandBuffer()
	err := runHome(cmd, nil)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Growth Index Station")
	assert.Contains(t, out, "open")
	assert.Contains(t, out, "locked")
	assert.Contains(t, out, "sponsored by Beta Fund")
	assert.Contains(t, out, "Trial days remaining: 2")
	assert.Contains(t, out, "about to expire")
}

func TestCommands_FailWithoutController(t *testing.T) {
	SetController(nil)

	cmd, _ := newCommandBuffer()
	assert.Error(t, runDashboard(cmd, []string{"growth"}))
	assert.Error(t, runHome(cmd, nil))
}
