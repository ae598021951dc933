package auth

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	registerEmail    string
	registerPassword string
	registerConfirm  string
)

// registerCmd creates a new account and signs in.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new Stratus account",
	Long: `Create a new account and sign in.

New accounts start with a free trial that unlocks every dashboard
station for a limited number of days.

Example:
  stratus auth register --email you@example.com --password secret --confirm secret`,
	RunE: runRegister,
}

func init() {
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "account email")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "account password")
	registerCmd.Flags().StringVar(&registerConfirm, "confirm", "", "password confirmation")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
	_ = registerCmd.MarkFlagRequired("confirm")
}

func runRegister(cmd *cobra.Command, args []string) error {
	if service == nil {
		return errors.New("auth service not configured")
	}

	if err := service.Register(cmd.Context(), registerEmail, registerPassword, registerConfirm); err != nil {
		return err
	}

	user := service.CurrentUser()
	fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s\n", user.Email)
	if user.IsTrialActive {
		fmt.Fprintf(cmd.OutOrStdout(), "Trial active: %d days remaining\n", user.TrialDaysLeft)
	}
	return nil
}
