package cmd

import (
	"fmt"

	"github.com/bnema/terabox-cookie-cli/internal/application"
	"github.com/spf13/cobra"
)

func newAccountCmd(state *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}

	cmd.AddCommand(
		newAccountListCmd(state),
		newAccountAddCmd(state),
		newAccountPasswordCmd(state),
	)

	return cmd
}

func newAccountListCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			accounts, err := state.app.service.ListAccounts(cmd.Context())
			if err != nil {
				return err
			}

			for _, account := range accounts {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", account.Number, account.DisplayName(), account.Email)
			}

			return nil
		},
	}
}

func newAccountAddCmd(state *cliState) *cobra.Command {
	var (
		email    string
		password string
		name     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append an account to the registry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			account, err := state.app.service.AddAccount(cmd.Context(), application.AddAccountCommand{
				Email:    email,
				Password: password,
				Name:     name,
				Naming:   application.NamingDefault,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "added account %d (%s)\n", account.Number, account.DisplayName())
			return err
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "login password, stored inline in accounts.toml")
	cmd.Flags().StringVar(&name, "name", "", "display name (default \"Account N\")")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newAccountPasswordCmd(state *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Manage account passwords",
	}

	var (
		number int
		value  string
	)

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Move an account password into the secret store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := state.app.service.SetPassword(cmd.Context(), application.SetPasswordCommand{
				Number: number,
				Value:  value,
			}); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "stored password for account %d as %s\n", number, application.PasswordSecretKey(number))
			return err
		},
	}
	setCmd.Flags().IntVar(&number, "number", 0, "account number")
	setCmd.Flags().StringVar(&value, "value", "", "password value")
	_ = setCmd.MarkFlagRequired("number")
	_ = setCmd.MarkFlagRequired("value")

	cmd.AddCommand(setCmd)

	return cmd
}
