package sponsor

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/stratus/internal/dashboard/domain"
)

var redeemModule string

// redeemCmd redeems a sponsor code for a station.
var redeemCmd = &cobra.Command{
	Use:   "redeem <code>",
	Short: "Redeem a sponsor code to unlock a station",
	Long: `Redeem a sponsor code to permanently unlock a dashboard station.

You must be signed in; the unlocked station is recorded on your
account, not on this machine.

Example:
  stratus sponsor redeem SPONSOR-2024-XYZ --module metals`,
	Args: cobra.ExactArgs(1),
	RunE: runRedeem,
}

func init() {
	redeemCmd.Flags().StringVarP(&redeemModule, "module", "m", "", "station to unlock (growth, broad, metals)")
	_ = redeemCmd.MarkFlagRequired("module")
}

func runRedeem(cmd *cobra.Command, args []string) error {
	if service == nil {
		return errors.New("auth service not configured")
	}

	module, err := domain.ParseModule(redeemModule)
	if err != nil {
		return err
	}

	if err := service.Redeem(cmd.Context(), args[0], module.String()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Code accepted. %s is now unlocked.\n", module.DisplayName())
	return nil
}
