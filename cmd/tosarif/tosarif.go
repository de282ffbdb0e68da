package tosarif

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/freegit9527/infer/internal/report"
	"github.com/freegit9527/infer/internal/sarif"
	"github.com/freegit9527/infer/pkg/shared/config"
	"github.com/freegit9527/infer/pkg/shared/files"
	"github.com/freegit9527/infer/pkg/shared/logger"
)

// RunOptionsToSarif holds the arguments for the to-sarif command.
type RunOptionsToSarif struct {
	Input  string
	Output string
}

var (
	AppConfig           *config.Config
	toSarifOptions      RunOptionsToSarif
	exampleToSarifUsage = `  # Convert the introduced findings of a differential to SARIF
  inferdiff to-sarif --input ./differential/introduced.json --output introduced.sarif`
)

// ToSarifCmd represents the to-sarif command.
var ToSarifCmd = &cobra.Command{
	Use:                   "to-sarif --input/-i PATH [--output/-o PATH]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleToSarifUsage,
	Short:                 "Convert a differential findings artifact to a SARIF report",
	RunE:                  runToSarifCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runToSarifCommand executes the to-sarif command.
func runToSarifCommand(cmd *cobra.Command, args []string) error {
	logger := logger.NewLogger(AppConfig, "core-to-sarif")

	if toSarifOptions.Input == "" {
		return fmt.Errorf("'input' flag must be specified")
	}
	if err := files.ValidatePath(toSarifOptions.Input); err != nil {
		return fmt.Errorf("invalid 'input' file: %w", err)
	}
	if toSarifOptions.Output == "" {
		toSarifOptions.Output = strings.TrimSuffix(toSarifOptions.Input, ".json") + ".sarif"
	}

	findings, err := report.Load(toSarifOptions.Input)
	if err != nil {
		return err
	}

	if err := sarif.WriteFindings(findings, toSarifOptions.Output); err != nil {
		logger.Error("failed to write SARIF report", "output", toSarifOptions.Output, "error", err)
		return err
	}

	logger.Info("SARIF report written", "findings", len(findings), "output", toSarifOptions.Output)
	return nil
}

func init() {
	ToSarifCmd.Flags().StringVarP(&toSarifOptions.Input, "input", "i", "", "differential findings artifact (JSON array of findings)")
	ToSarifCmd.Flags().StringVarP(&toSarifOptions.Output, "output", "o", "", "output SARIF file (default: input with .sarif extension)")
}
