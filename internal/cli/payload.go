package cli

import (
	"github.com/smallbiznis/invoicedesk/internal/invoice/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPayloadCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "payload <form.json>",
		Short: "Build API submission payloads from invoice form state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(func(d Deps) error {
				forms, single, err := readObjects(args[0])
				if err != nil {
					return err
				}

				payloads := make([]domain.InvoicePayload, 0, len(forms))
				for _, form := range forms {
					payloads = append(payloads, d.Adapter.BuildPayload(form))
				}
				d.Log.Info("payloads built", zap.Int("count", len(payloads)))

				w, closeFn, err := openOutput(out)
				if err != nil {
					return err
				}
				defer closeFn()

				if single {
					return writeJSON(w, payloads[0])
				}
				return writeJSON(w, payloads)
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write output to file instead of stdout")
	return cmd
}
