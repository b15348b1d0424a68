// Kitten backend.
//
//	@title			Kitten API
//	@version		1.0
//	@description	Backend for the Kitten games and movies portal.
//	@BasePath		/api
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	serve := newServeCommand()

	rootCmd := &cobra.Command{
		Use:          "kitten",
		Short:        "Kitten games and movies portal backend",
		SilenceUsage: true,
		RunE:         serve.RunE,
	}
	rootCmd.Flags().AddFlagSet(serve.Flags())

	rootCmd.AddCommand(
		serve,
		newHashPasswordCommand(),
	)
	return rootCmd
}
