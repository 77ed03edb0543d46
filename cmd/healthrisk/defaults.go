package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Skufu/vitalrisk/internal/intake"
)

func newDefaultsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default profile as YAML",
		Long: `Defaults prints the profile the intake form starts from. Edit the
output and pass it to "healthrisk assess --profile".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, closeFn, err := opts.writer(cmd)
			if err != nil {
				return fmt.Errorf("defaults: %w", err)
			}
			defer closeFn()

			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(intake.DefaultForm()); err != nil {
				return fmt.Errorf("defaults: encoding profile: %w", err)
			}
			return enc.Close()
		},
	}
}
