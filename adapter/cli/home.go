package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the station overview",
	Long: `Display the home screen: all dashboard stations, whether your
account can open them, and where to obtain sponsor codes.`,
	Aliases: []string{"stations"},
	RunE:    runHome,
}

func init() {
	rootCmd.AddCommand(homeCmd)
}

func runHome(cmd *cobra.Command, args []string) error {
	if controller == nil {
		return errors.New("dashboard controller not configured")
	}

	home := controller.Home(cmd.Context())
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Stratus Stations")
	fmt.Fprintln(out, strings.Repeat("=", 64))

	for _, card := range home.Cards {
		state := "locked"
		if card.Accessible {
			state = "open"
		}
		fmt.Fprintf(out, "  %-26s %-8s", card.Name, state)
		if card.Sponsor.Name != "" {
			fmt.Fprintf(out, " sponsored by %s", card.Sponsor.Name)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out)
	if home.TrialKnown {
		fmt.Fprintf(out, "  Trial days remaining: %d\n", home.TrialDaysLeft)
		if home.ShowTrialWarning {
			fmt.Fprintln(out, "  Your trial is about to expire. Redeem sponsor codes to keep access:")
			fmt.Fprintln(out, "    stratus sponsor links")
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "  Open a station with: stratus dashboard <growth|broad|metals>")
	fmt.Fprintln(out)
	return nil
}
