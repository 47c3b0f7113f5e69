package cli

import (
	"github.com/smallbiznis/invoicedesk/internal/invoice/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newNormalizeCommand() *cobra.Command {
	var (
		out       string
		assignIDs bool
	)

	cmd := &cobra.Command{
		Use:   "normalize <invoices.json>",
		Short: "Normalize raw invoice payloads to the UI shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(func(d Deps) error {
				raw, single, err := readObjects(args[0])
				if err != nil {
					return err
				}

				normalized := make([]domain.Invoice, 0, len(raw))
				for _, obj := range raw {
					inv := d.Adapter.FromAPI(obj)
					if assignIDs && inv.ID == "" {
						inv.ID = d.GenID.Generate().String()
					}
					normalized = append(normalized, inv)
				}
				d.Log.Info("invoices normalized", zap.Int("count", len(normalized)))

				w, closeFn, err := openOutput(out)
				if err != nil {
					return err
				}
				defer closeFn()

				if single {
					return writeJSON(w, normalized[0])
				}
				return writeJSON(w, normalized)
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write output to file instead of stdout")
	cmd.Flags().BoolVar(&assignIDs, "assign-ids", false, "assign generated ids to invoices that have none")
	return cmd
}
