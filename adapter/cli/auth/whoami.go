package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/stratus/internal/identity/domain"
)

var whoamiRefresh bool

// whoamiCmd shows the signed-in account and its entitlements.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE:  runWhoami,
}

func init() {
	whoamiCmd.Flags().BoolVar(&whoamiRefresh, "refresh", false, "re-fetch the profile from the server")
}

func runWhoami(cmd *cobra.Command, args []string) error {
	if service == nil {
		return errors.New("auth service not configured")
	}

	if !service.IsAuthenticated() {
		fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
		fmt.Fprintln(cmd.OutOrStdout(), "Sign in with: stratus auth login")
		return nil
	}

	if whoamiRefresh {
		if err := service.RefreshUser(cmd.Context()); err != nil {
			return err
		}
	}

	user := service.CurrentUser()
	if user == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Not signed in.")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", user.Email)
	printEntitlements(cmd, user)
	return nil
}

func printEntitlements(cmd *cobra.Command, user *domain.User) {
	if user == nil {
		return
	}
	if user.IsTrialActive && user.TrialDaysLeft > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Trial active: %d days remaining\n", user.TrialDaysLeft)
	}
	if len(user.ActivatedModules) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Activated stations: %s\n", strings.Join(user.ActivatedModules, ", "))
	}
}
