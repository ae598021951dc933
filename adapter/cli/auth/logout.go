package auth

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/stratus/adapter/cli"
)

// logoutCmd signs out and clears the stored session.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if service == nil {
			return errors.New("auth service not configured")
		}

		service.Logout(cmd.Context())
		cli.ResetDashboard()
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
		return nil
	},
}
