package sponsor

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/stratus/internal/dashboard/domain"
)

// linksCmd lists the sponsor pages per station.
var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "Show where to obtain sponsor codes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if client == nil {
			return errors.New("backend client not configured")
		}

		links, err := client.SponsorLinks(cmd.Context())
		if err != nil {
			return err
		}

		for _, m := range domain.Modules() {
			link, ok := links[m.String()]
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s (no sponsor listed)\n", m.DisplayName())
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s (%s)\n", m.DisplayName(), link.Name, link.Link)
		}
		return nil
	},
}
