package main

import (
	"github.com/spf13/cobra"

	"github.com/lixenwraith/blockpaint/config"
)

// NewConfigCommand prints the effective configuration as YAML.
func NewConfigCommand(loader *config.Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loader.Load()
			if err != nil {
				return err
			}
			out, err := cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
