package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

// cliState carries the lazily wired app so --config is parsed before wiring.
type cliState struct {
	configFile string
	app        *app
}

func newRootCmd() *cobra.Command {
	state := &cliState{}

	rootCmd := &cobra.Command{
		Use:           "tbc",
		Short:         "TeraBox cookie regenerator (tbc): log in, capture and publish session cookies",
		Long:          "tbc drives a headless Chromium through the TeraBox login for each configured account, stores the captured request text in cookies.json and forwards the cookie string to an optional collector endpoint.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			app, err := wireApp(state.configFile)
			if err != nil {
				return err
			}
			state.app = app
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			state.app.close()
		},
	}
	rootCmd.PersistentFlags().StringVar(&state.configFile, "config", "", "config file (default ~/.tbc/config.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newAccountCmd(state),
		newRegenerateCmd(state),
		newCookiesCmd(state),
		newStatusCmd(state),
		newServeCmd(state),
	)

	return rootCmd
}
