package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/terabox-cookie-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newRegenerateCmd(state *cliState) *cobra.Command {
	var (
		number  int
		headful bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "regenerate",
		Short: "Log an account in and capture fresh cookies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if number <= 0 {
				return fmt.Errorf("%w: %d", domain.ErrInvalidAccountNumber, number)
			}

			regen := state.app.regenerator(headful)

			var result domain.Regeneration
			task := func(ctx context.Context) error {
				var err error
				result, err = regen.Regenerate(ctx, number)
				return err
			}

			if asJSON {
				if err := task(cmd.Context()); err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			label := fmt.Sprintf("Regenerating cookies for account %d...", number)
			if err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), label, task); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "regenerated cookies for %s (#%d)\n", result.Name, result.Number)
			if result.Forwarded {
				_, _ = fmt.Fprintln(out, "forwarded to collector")
			}
			_, err := fmt.Fprintln(out, result.Cookie)
			return err
		},
	}

	cmd.Flags().IntVar(&number, "number", 0, "account number")
	cmd.Flags().BoolVar(&headful, "headful", false, "show the browser window")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("number")

	return cmd
}
