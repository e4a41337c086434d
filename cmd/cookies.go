package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	statusadapter "github.com/bnema/terabox-cookie-cli/internal/adapters/render/status"
	"github.com/bnema/terabox-cookie-cli/internal/application"
	"github.com/bnema/terabox-cookie-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCookiesCmd(state *cliState) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "cookies",
		Short: "Print stored request texts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			stored, err := state.app.service.Cookies(cmd.Context())
			if err != nil {
				if errors.Is(err, domain.ErrNoCookiesStored) && !asJSON {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), "no cookies stored yet")
					return err
				}
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(stored)
			}

			names := make([]string, 0, len(stored))
			for name := range stored {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				cookie, ok := domain.CookieLine(stored[name])
				if !ok {
					cookie = "(no Cookie header)"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, cookie)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw cookies.json object")

	return cmd
}

// statusView is the JSON shape of one account in `status --json`.
type statusView struct {
	Number         int                        `json:"number"`
	Name           string                     `json:"name"`
	Email          string                     `json:"email"`
	PasswordSource application.PasswordSource `json:"password_source"`
	HasCookies     bool                       `json:"has_cookies"`
	Cookie         string                     `json:"cookie,omitempty"`
}

func newStatusView(status application.AccountStatus) statusView {
	return statusView{
		Number:         status.Account.Number,
		Name:           status.Account.DisplayName(),
		Email:          status.Account.Email,
		PasswordSource: status.PasswordSource,
		HasCookies:     status.HasCookies,
		Cookie:         status.Cookie,
	}
}

func newStatusCmd(state *cliState) *cobra.Command {
	var (
		asJSON      bool
		showCookies bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show accounts with their stored cookie coverage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses, err := state.app.service.StatusAll(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				views := make([]statusView, 0, len(statuses))
				for _, status := range statuses {
					views = append(views, newStatusView(status))
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}

			rendered, err := state.app.statusRenderer(statuses, statusadapter.RenderOptions{
				Priority:    state.app.cfg.Login.CookiePriority,
				ShowCookies: showCookies,
			})
			if err != nil {
				return fmt.Errorf("render status: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print statuses as JSON")
	cmd.Flags().BoolVar(&showCookies, "show-cookies", false, "include a cookie preview")

	return cmd
}
