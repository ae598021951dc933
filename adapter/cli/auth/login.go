package auth

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

// loginCmd signs in with email and password.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to your Stratus account",
	Long: `Sign in with your email and password.

The session token is stored locally, so subsequent commands stay
signed in until you run: stratus auth logout

Example:
  stratus auth login --email you@example.com --password secret`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "account email")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "account password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	if service == nil {
		return errors.New("auth service not configured")
	}

	if err := service.Login(cmd.Context(), loginEmail, loginPassword); err != nil {
		return err
	}

	user := service.CurrentUser()
	fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", user.Email)
	printEntitlements(cmd, user)
	return nil
}
