package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seo-optimizer/backend/cmd"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "seo-optimizer",
		Short: "Live content optimization engine",
		Long: `seo-optimizer scores draft content as it is written, ranks improvement
suggestions and previews meta fields on search and social channels.

Run "seo-optimizer serve" to start the HTTP API used by the editor.`,
		SilenceUsage: true,
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		cmd.NewServeCmd(),
		cmd.NewAnalyzeCmd(),
		cmd.NewPreviewCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "seo-optimizer version %s\n", version)
		},
	}
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
