// Package cmd contains the command line applications for the project.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yeisme/imagevault/pkg/app"
)

var (
	configPath string
	debug      bool

	rootCmd = &cobra.Command{
		Use:   "imagevault",
		Short: "A self-hosted image hosting service with local disk storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.NewApp(configPath).Run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file or directory containing config.*")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print verbose config debug output")

	registerConfigsCommands()
	registerDBCommands()
	registerKVCommands()
	registerMQCommands()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
