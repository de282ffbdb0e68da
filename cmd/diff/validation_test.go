package diff

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freegit9527/infer/pkg/shared/config"
)

func writeTempFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestValidateDiffArgs(t *testing.T) {
	tmpDir := t.TempDir()
	reportFile := writeTempFile(t, tmpDir, "report.json")
	previousFile := writeTempFile(t, tmpDir, "previous.json")
	costsFile := writeTempFile(t, tmpDir, "costs.json")
	previousCostsFile := writeTempFile(t, tmpDir, "previous-costs.json")

	tests := []struct {
		name       string
		options    RunOptionsDiff
		cfg        *config.Config
		wantOutput string
		wantErr    bool
	}{
		{
			name: "valid with explicit output",
			options: RunOptionsDiff{
				Report: reportFile, PreviousReport: previousFile,
				Costs: costsFile, PreviousCosts: previousCostsFile,
				Output: filepath.Join(tmpDir, "out"),
			},
			cfg:        &config.Config{},
			wantOutput: filepath.Join(tmpDir, "out"),
		},
		{
			name: "output falls back to config",
			options: RunOptionsDiff{
				Report: reportFile, PreviousReport: previousFile,
				Costs: costsFile, PreviousCosts: previousCostsFile,
			},
			cfg: &config.Config{
				Reportdiff: config.Reportdiff{ResultsFolder: filepath.Join(tmpDir, "configured")},
			},
			wantOutput: filepath.Join(tmpDir, "configured"),
		},
		{
			name: "output falls back to default",
			options: RunOptionsDiff{
				Report: reportFile, PreviousReport: previousFile,
				Costs: costsFile, PreviousCosts: previousCostsFile,
			},
			cfg:        &config.Config{},
			wantOutput: "differential",
		},
		{
			name: "missing report flag",
			options: RunOptionsDiff{
				PreviousReport: previousFile,
				Costs:          costsFile, PreviousCosts: previousCostsFile,
			},
			cfg:     &config.Config{},
			wantErr: true,
		},
		{
			name: "nonexistent report file",
			options: RunOptionsDiff{
				Report: filepath.Join(tmpDir, "absent.json"), PreviousReport: previousFile,
				Costs: costsFile, PreviousCosts: previousCostsFile,
			},
			cfg:     &config.Config{},
			wantErr: true,
		},
		{
			name: "report is a directory",
			options: RunOptionsDiff{
				Report: tmpDir, PreviousReport: previousFile,
				Costs: costsFile, PreviousCosts: previousCostsFile,
			},
			cfg:     &config.Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDiffArgs(&tt.options, tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantOutput, tt.options.Output)
		})
	}
}
