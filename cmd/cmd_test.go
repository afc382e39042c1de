package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"panorama/config"
	"panorama/panos"
	"panorama/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v2"
)

// buildConfig renders a configuration with the given security rules
// (name -> member list) and decryption rules under DG1 post-rulebase and
// pre-rulebase.
func buildConfig(t *testing.T, security [][2]string, decryption []string) string {
	t.Helper()

	var sec strings.Builder
	for _, r := range security {
		fmt.Fprintf(&sec, `<entry name="%s">`, r[0])
		if r[1] != "" {
			sec.WriteString("<profile-setting><profiles>")
			for i, member := range strings.Split(r[1], ",") {
				category := []string{"virus", "spyware", "vulnerability"}[i]
				fmt.Fprintf(&sec, "<%s><member>%s</member></%s>", category, member, category)
			}
			sec.WriteString("</profiles></profile-setting>")
		}
		sec.WriteString("</entry>")
	}
	var dec strings.Builder
	for _, name := range decryption {
		fmt.Fprintf(&dec, `<entry name="%s"><action>decrypt</action></entry>`, name)
	}

	doc := fmt.Sprintf(`<config><devices><entry name="localhost.localdomain"><device-group>
<entry name="DG1">
<pre-rulebase><security><rules>%s</rules></security></pre-rulebase>
<post-rulebase><decryption><rules>%s</rules></decryption></post-rulebase>
</entry>
</device-group></entry></devices></config>`, sec.String(), dec.String())

	path := filepath.Join(t.TempDir(), "panorama.xml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestRunDecryptionAlwaysPreRulebase(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.txt")
	opts := config.DecryptionOptions{
		Selector: config.Selector{
			ConfigPath:  buildConfig(t, nil, []string{"R1", "R2"}),
			Rulebase:    "post-rulebase",
			DeviceGroup: "DG1",
		},
		Profile: "Rec-Profile",
		Output:  output,
	}
	require.NoError(t, runDecryption(opts))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t,
		`set device-group DG1 pre-rulebase decryption rules "R1" profile Rec-Profile`+"\n"+
			`set device-group DG1 pre-rulebase decryption rules "R2" profile Rec-Profile`+"\n",
		string(data))
}

func TestRunDecryptionNoRules(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out.txt")
	opts := config.DecryptionOptions{
		Selector: config.Selector{
			ConfigPath:  buildConfig(t, nil, []string{"R1"}),
			Rulebase:    "pre-rulebase",
			DeviceGroup: "DG1",
		},
		Profile: "Rec-Profile",
		Output:  output,
	}
	err := runDecryption(opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, panos.ErrNoRules)
	assert.Contains(t, err.Error(), "pre-rulebase for device-group: DG1")
	assert.NoFileExists(t, output)
}

func recurringFixture(t *testing.T) string {
	var security [][2]string
	for i := 1; i <= 3; i++ {
		security = append(security, [2]string{fmt.Sprintf("small-%d", i), "AV2"})
	}
	for i := 1; i <= 12; i++ {
		security = append(security, [2]string{fmt.Sprintf("big-%d", i), "AV1,Spy1"})
	}
	return buildConfig(t, security, nil)
}

func TestRunRecurringThreshold(t *testing.T) {
	for _, threshold := range []int{0, 10} {
		t.Run(fmt.Sprintf("threshold %d", threshold), func(t *testing.T) {
			reportPath := filepath.Join(t.TempDir(), "recurring-sec-profiles.xlsx")
			opts, err := config.NewRecurringOptions(config.Selector{
				ConfigPath:  recurringFixture(t),
				Rulebase:    "pre-rulebase",
				DeviceGroup: "DG1",
			}, threshold, true, reportPath, nil)
			require.NoError(t, err)
			require.NoError(t, runRecurring(opts))

			f, err := excelize.OpenFile(reportPath)
			require.NoError(t, err)
			defer f.Close()

			review, err := f.GetRows(report.ReviewSheet)
			require.NoError(t, err)
			require.Len(t, review, 3)
			assert.Equal(t, "AV1\nSpy1", review[2][0])
			assert.Equal(t, "12", review[2][1])

			commands, err := f.GetRows(report.CommandsSheet)
			require.NoError(t, err)
			require.Len(t, commands, 1+1+12)
			assert.Equal(t, "set device-group DG1 profile-group sec_prof_1 virus AV1 spyware Spy1", commands[1][0])
			assignments := 0
			for _, row := range commands[2:] {
				require.NotEmpty(t, row)
				assert.Contains(t, row[0], "profile-setting group sec_prof_1")
				assert.NotContains(t, row[0], "small-")
				assignments++
			}
			assert.Equal(t, 12, assignments)
		})
	}
}

func TestRunRecurringLowThresholdOrder(t *testing.T) {
	reportPath := filepath.Join(t.TempDir(), "recurring-sec-profiles.xlsx")
	opts := config.RecurringOptions{
		Selector: config.Selector{
			ConfigPath:  recurringFixture(t),
			Rulebase:    "pre-rulebase",
			DeviceGroup: "DG1",
		},
		Threshold: 3,
		Report:    reportPath,
	}
	require.NoError(t, runRecurring(opts))

	f, err := excelize.OpenFile(reportPath)
	require.NoError(t, err)
	defer f.Close()

	commands, err := f.GetRows(report.CommandsSheet)
	require.NoError(t, err)
	// first-seen group is numbered first
	assert.Equal(t, "set device-group DG1 profile-group sec_prof_1 virus AV2", commands[1][0])
	assert.Empty(t, commands[5])
	assert.Equal(t, "set device-group DG1 profile-group sec_prof_2 virus AV1 spyware Spy1", commands[6][0])
}

func TestRunRecurringErrors(t *testing.T) {
	dir := t.TempDir()
	missingDir := filepath.Join(dir, "output", "recurring-sec-profiles.xlsx")

	opts := config.RecurringOptions{
		Selector: config.Selector{
			ConfigPath:  recurringFixture(t),
			Rulebase:    "post-rulebase",
			DeviceGroup: "DG1",
		},
		Threshold: 10,
		Report:    filepath.Join(dir, "report.xlsx"),
	}
	err := runRecurring(opts)
	assert.ErrorIs(t, err, panos.ErrNoRules)
	assert.NoFileExists(t, opts.Report)

	opts.Rulebase = "pre-rulebase"
	opts.Report = missingDir
	assert.ErrorIs(t, runRecurring(opts), report.ErrWrite)

	opts.ConfigPath = filepath.Join(dir, "missing.xml")
	assert.ErrorIs(t, runRecurring(opts), panos.ErrInputNotFound)
}

func TestPrintRules(t *testing.T) {
	path := buildConfig(t, [][2]string{{"web", "AV1,Spy1"}, {"dns", ""}}, nil)
	doc, err := panos.LoadDocument(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, printRules(&buf, doc, "DG1", "pre-rulebase", panos.PolicySecurity))

	var printed []printedRule
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &printed))
	assert.Equal(t, []printedRule{
		{Name: "web", Profiles: []panos.ProfileRef{{Category: "virus", Member: "AV1"}, {Category: "spyware", Member: "Spy1"}}},
		{Name: "dns"},
	}, printed)

	err = printRules(&buf, doc, "DG1", "post-rulebase", panos.PolicySecurity)
	assert.ErrorIs(t, err, panos.ErrNoRules)
}
