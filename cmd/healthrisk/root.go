package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Skufu/vitalrisk/internal/logging"
)

type rootOptions struct {
	verbose bool
	format  string
	output  string
	logger  *logrus.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "healthrisk",
		Short: "Score a health profile for chronic disease risk",
		Long: `healthrisk reads a health profile (YAML or JSON), scores it and prints
an overall risk band, disease-specific estimates and recommendations.

Start from the default profile:
  healthrisk defaults > me.yaml
  healthrisk assess --profile me.yaml`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setupLogging()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "terminal", "output format (terminal|json|markdown)")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "write output to file instead of stdout")

	root.AddCommand(
		newAssessCmd(opts),
		newDefaultsCmd(opts),
		newVersionCmd(),
	)
	return root
}

func (o *rootOptions) setupLogging() error {
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	logger, err := logging.New(level, "text")
	if err != nil {
		return err
	}
	o.logger = logger
	return nil
}
