package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Skufu/vitalrisk/internal/engine"
	"github.com/Skufu/vitalrisk/internal/intake"
	"github.com/Skufu/vitalrisk/internal/report"
)

var errVeryHighRisk = errors.New("overall risk is very high")

func newAssessCmd(opts *rootOptions) *cobra.Command {
	var (
		profilePath    string
		failOnVeryHigh bool
	)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Score a profile and print the risk report",
		Long: `Assess reads a profile in YAML or JSON and prints the risk report.
Fields left out of the file keep their default values.

  healthrisk assess --profile me.yaml
  cat me.json | healthrisk assess --profile - --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ForFormat(opts.format)
			if err != nil {
				return fmt.Errorf("assess: %w", err)
			}

			data, err := readProfile(cmd, profilePath)
			if err != nil {
				return fmt.Errorf("assess: %w", err)
			}

			form, err := decodeForm(data)
			if err != nil {
				return fmt.Errorf("assess: parsing %s: %w", profilePath, err)
			}

			profile, err := buildProfile(form)
			if err != nil {
				return fmt.Errorf("assess: %w", err)
			}

			rep := report.NewGenerator().Generate(profile)
			overall := rep.Assessment.OverallRisk
			opts.logger.WithFields(logrus.Fields{
				"report_id":       rep.ID,
				"overall_level":   overall.Level,
				"score":           overall.Score,
				"recommendations": len(rep.Assessment.Recommendations),
			}).Debug("assessment generated")

			w, closeFn, err := opts.writer(cmd)
			if err != nil {
				return fmt.Errorf("assess: %w", err)
			}
			defer closeFn()

			if err := f.Format(w, rep); err != nil {
				return fmt.Errorf("assess: writing report: %w", err)
			}

			if failOnVeryHigh && overall.Level == engine.BandVeryHigh {
				return errVeryHighRisk
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", `profile file (YAML or JSON), "-" for stdin`)
	cmd.Flags().BoolVar(&failOnVeryHigh, "fail-on-very-high", false, "exit with status 2 when the overall risk is very high")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

func readProfile(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}
	return data, nil
}

// decodeForm overlays data on the default form. JSON is accepted as YAML.
// Unknown keys are rejected so a typo does not silently fall back to a
// default.
func decodeForm(data []byte) (intake.Form, error) {
	form := intake.DefaultForm()
	if len(bytes.TrimSpace(data)) == 0 {
		return form, errors.New("profile is empty")
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&form); err != nil {
		return form, err
	}
	return form, nil
}

// buildProfile feeds the form through the intake builder one section at a
// time so errors name the section they came from.
func buildProfile(f intake.Form) (engine.Profile, error) {
	b := intake.NewBuilder()
	steps := []func() error{
		func() error { return b.SetPersonal(f.PersonalInfo) },
		func() error { return b.SetVitals(f.VitalSigns) },
		func() error { return b.SetLifestyle(f.Lifestyle) },
		func() error { return b.SetMedical(f.MedicalHistory) },
		func() error { return b.SetWellness(f.Wellness) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return engine.Profile{}, fmt.Errorf("%s: %w", b.Current(), err)
		}
		b.Next()
	}
	return b.Build()
}

// writer returns the command's output, or the --output file when set.
func (o *rootOptions) writer(cmd *cobra.Command) (io.Writer, func(), error) {
	if o.output == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	file, err := os.Create(o.output)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return file, func() { _ = file.Close() }, nil
}
