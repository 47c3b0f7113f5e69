package cli

import "github.com/spf13/cobra"

// NewRootCommand builds the invoicedesk command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "invoicedesk",
		Short:        "Normalize invoice payloads and generate business reports",
		Long:         "invoicedesk shapes loosely-typed invoice API payloads into a normalized form,\nbuilds API submission payloads from form state, and computes summary reports\nfrom invoice and customer collections.",
		SilenceUsage: true,
	}

	root.AddCommand(
		newNormalizeCommand(),
		newPayloadCommand(),
		newReportCommand(),
	)
	return root
}
