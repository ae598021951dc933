// Package auth provides the account commands: login, register, logout
// and whoami.
package auth

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/stratus/internal/identity/application"
)

var service *application.Service

// SetService wires the auth service for CLI commands.
func SetService(s *application.Service) {
	service = s
}

// Cmd is the parent command for account operations.
var Cmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage your Stratus account",
}

func init() {
	Cmd.AddCommand(loginCmd)
	Cmd.AddCommand(registerCmd)
	Cmd.AddCommand(logoutCmd)
	Cmd.AddCommand(whoamiCmd)
}
