package sponsor

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/stratus/internal/dashboard/domain"
)

// checkCmd asks the server whether a station is accessible.
var checkCmd = &cobra.Command{
	Use:   "check <module>",
	Short: "Check whether a station is accessible for your account",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	if service == nil {
		return errors.New("auth service not configured")
	}

	module, err := domain.ParseModule(args[0])
	if err != nil {
		return err
	}

	check, err := service.CheckAccess(cmd.Context(), module.String())
	if err != nil {
		return err
	}

	if check.Allowed {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: accessible (%s)\n", module.DisplayName(), check.Reason)
		if check.TrialDaysLeft != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Trial days remaining: %d\n", *check.TrialDaysLeft)
		}
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: locked (%s)\n", module.DisplayName(), check.Reason)
	fmt.Fprintln(cmd.OutOrStdout(), "Unlock it with: stratus sponsor redeem <code> --module "+module.String())
	return nil
}
