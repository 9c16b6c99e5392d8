package cli

import (
	"encoding/json"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ai-rd1/website/internal/lead"
)

func newSizesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sizes",
		Short: "List the accepted company-size buckets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if opts.output() == "json" {
				return json.NewEncoder(w).Encode(lead.CompanySizes)
			}

			table := tablewriter.NewWriter(w)
			table.Header("Value", "Label")
			for _, s := range lead.CompanySizes {
				_ = table.Append(string(s), s.Label())
			}
			return table.Render()
		},
	}
}
