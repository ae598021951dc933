package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	dashboardApp "github.com/felixgeelhaar/stratus/internal/dashboard/application"
	"github.com/felixgeelhaar/stratus/internal/dashboard/domain"
)

var controller *dashboardApp.Controller

// SetController wires the view controller for the dashboard commands.
func SetController(c *dashboardApp.Controller) {
	controller = c
}

// ResetDashboard drops the cached feed and returns to the home view.
// Called after logout so the next session starts clean.
func ResetDashboard() {
	if controller != nil {
		controller.Reset()
	}
}

var (
	dashboardRefresh bool
	dashboardCode    string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard <module>",
	Short: "Open a dashboard station",
	Long: `Open one of the dashboard stations:

  growth   Growth Index Station
  broad    Broad Index Station
  metals   Precious Metals Station

Stations are available during your trial; afterwards each one unlocks
with a sponsor code (see: stratus sponsor).

Examples:
  stratus dashboard growth
  stratus dashboard metals --refresh
  stratus dashboard metals --code SPONSOR-2024-XYZ`,
	Aliases: []string{"dash", "open"},
	Args:    cobra.ExactArgs(1),
	RunE:    runDashboard,
}

func init() {
	dashboardCmd.Flags().BoolVar(&dashboardRefresh, "refresh", false, "re-fetch the indicator feed")
	dashboardCmd.Flags().StringVar(&dashboardCode, "code", "", "redeem a sponsor code for this station before opening it")
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	if controller == nil {
		return errors.New("dashboard controller not configured")
	}

	module, err := domain.ParseModule(args[0])
	if err != nil {
		return err
	}

	var screen *dashboardApp.Screen
	if dashboardCode != "" {
		screen, err = controller.RedeemAndOpen(cmd.Context(), dashboardCode, module)
	} else {
		screen, err = controller.OpenModule(cmd.Context(), module)
	}
	if errors.Is(err, dashboardApp.ErrAccessDenied) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is locked.\n", module.DisplayName())
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), "Unlock it with a sponsor code:")
		fmt.Fprintf(cmd.OutOrStdout(), "  stratus sponsor redeem <code> --module %s\n", module.String())
		fmt.Fprintln(cmd.OutOrStdout(), "  stratus sponsor links")
		return nil
	}
	if err != nil {
		return err
	}

	if dashboardRefresh {
		if refreshed, err := controller.Refresh(cmd.Context()); err == nil && refreshed != nil {
			screen = refreshed
		}
	}

	renderScreen(cmd, screen)
	return nil
}

func renderScreen(cmd *cobra.Command, screen *dashboardApp.Screen) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "\n  %s\n", screen.Module.DisplayName())
	fmt.Fprintln(out, strings.Repeat("=", 64))

	if screen.Unavailable {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Indicator feed unavailable. Try again later or run with --refresh.")
		fmt.Fprintln(out)
		return
	}

	renderSection(cmd, "Index", screen.Groups.IndexRow)
	renderSection(cmd, "Ratios", screen.Groups.RatioRow)
	renderSection(cmd, "Tier 1", screen.Groups.Tier1)
	renderSection(cmd, "Tier 2", screen.Groups.Tier2)
	renderSection(cmd, "Tier 3", screen.Groups.Tier3)
	fmt.Fprintln(out)
}

func renderSection(cmd *cobra.Command, title string, metrics []domain.Metric) {
	if len(metrics) == 0 {
		return
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "\n  %s\n", title)
	for _, m := range metrics {
		fmt.Fprintf(out, "    %-28s %12.2f %-6s [%s] %s\n",
			m.Name, m.Value, m.Unit, statusGlyph(m.StatusColor), m.StatusText)
	}
}

func statusGlyph(status domain.Status) string {
	switch status {
	case domain.StatusSuccess:
		return "+"
	case domain.StatusWarning:
		return "!"
	case domain.StatusDanger:
		return "x"
	default:
		return "-"
	}
}
