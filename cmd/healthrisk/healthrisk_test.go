package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skufu/vitalrisk/internal/engine"
	"github.com/Skufu/vitalrisk/internal/intake"
	"github.com/Skufu/vitalrisk/internal/report"
)

const riskyProfile = `
age: 58
weight: 104
waistCircumference: 112
systolicBP: 165
diastolicBP: 102
glucose: 130
hba1c: 6.8
smokingStatus: current
exerciseFrequency: none
medications: metformin, lisinopril
`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	err := root.Execute()
	return out.String(), err
}

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "healthrisk dev")
	assert.Contains(t, out, "commit:  none")
}

func TestDefaults_RoundTrips(t *testing.T) {
	out, err := run(t, "", "defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "systolicBP: 120")

	form, err := decodeForm([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, intake.DefaultForm(), form)
}

func TestAssess_TerminalFromFile(t *testing.T) {
	out, err := run(t, "", "assess", "--profile", writeProfile(t, riskyProfile))
	require.NoError(t, err)
	assert.Contains(t, out, "VERY HIGH RISK")
	assert.Contains(t, out, "Smoking Cessation")
}

func TestAssess_JSONFromStdin(t *testing.T) {
	in := `{"age": 40, "gender": "female", "medications": ["aspirin"]}`
	out, err := run(t, in, "assess", "-p", "-", "-f", "json")
	require.NoError(t, err)

	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.True(t, strings.HasPrefix(rep.ID, "rpt-"))
	assert.Len(t, rep.Assessment.SpecificRisks, 4)
}

func TestAssess_MarkdownToOutputFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "report.md")
	out, err := run(t, "", "assess", "-p", writeProfile(t, "age: 40\n"), "-f", "markdown", "-o", dest)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# Overall Health Risk Assessment"))
}

func TestAssess_ValidationNamesSection(t *testing.T) {
	_, err := run(t, "", "assess", "-p", writeProfile(t, "systolicBP: 300\n"))
	require.Error(t, err)
	assert.Equal(t,
		"assess: Vital Signs & Lab Results: validation failed: systolic blood pressure must be between 80 and 250",
		err.Error())
}

func TestAssess_RejectsUnknownFields(t *testing.T) {
	_, err := run(t, "", "assess", "-p", writeProfile(t, "systolic: 130\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field systolic not found")
}

func TestAssess_RejectsEmptyProfile(t *testing.T) {
	_, err := run(t, "  \n", "assess", "-p", "-")
	assert.EqualError(t, err, "assess: parsing -: profile is empty")
}

func TestAssess_FailOnVeryHigh(t *testing.T) {
	path := writeProfile(t, riskyProfile)

	_, err := run(t, "", "assess", "-p", path, "--fail-on-very-high")
	assert.ErrorIs(t, err, errVeryHighRisk)

	_, err = run(t, "", "assess", "-p", path)
	assert.NoError(t, err)

	_, err = run(t, "", "assess", "-p", writeProfile(t, "age: 30\n"), "--fail-on-very-high")
	assert.NoError(t, err)
}

func TestAssess_FlagErrors(t *testing.T) {
	_, err := run(t, "", "assess")
	assert.ErrorContains(t, err, `required flag(s) "profile" not set`)

	_, err = run(t, "", "assess", "-p", "-", "-f", "html")
	assert.EqualError(t, err, `assess: unknown report format "html"`)

	_, err = run(t, "", "assess", "-p", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading profile")
}

func TestBuildProfile(t *testing.T) {
	f := intake.DefaultForm()
	f.Gender = engine.GenderFemale
	f.Medications = intake.List{"aspirin"}

	p, err := buildProfile(f)
	require.NoError(t, err)
	assert.Equal(t, engine.GenderFemale, p.Gender)
	assert.Equal(t, []string{"aspirin"}, p.Medications)

	f.MentalHealthStatus = "great"
	_, err = buildProfile(f)
	assert.ErrorContains(t, err, "Mental Health & Wellness: validation failed: mental health status must be one of")
}
