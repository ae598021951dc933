// Package sponsor provides the sponsor-code commands: redeem, links
// and check.
package sponsor

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/stratus/internal/gateway"
	"github.com/felixgeelhaar/stratus/internal/identity/application"
)

var (
	service *application.Service
	client  *gateway.Client
)

// SetServices wires the auth service and backend client for CLI commands.
func SetServices(s *application.Service, c *gateway.Client) {
	service = s
	client = c
}

// Cmd is the parent command for sponsor-code operations.
var Cmd = &cobra.Command{
	Use:   "sponsor",
	Short: "Redeem sponsor codes and inspect station access",
	Long: `Sponsor codes permanently unlock a dashboard station for your
account. Codes are distributed by the station sponsors; run
"stratus sponsor links" to see where to obtain one.`,
}

func init() {
	Cmd.AddCommand(redeemCmd)
	Cmd.AddCommand(linksCmd)
	Cmd.AddCommand(checkCmd)
}
