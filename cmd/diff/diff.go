package diff

import (
	"github.com/spf13/cobra"

	"github.com/freegit9527/infer/internal/costs"
	"github.com/freegit9527/infer/internal/differential"
	"github.com/freegit9527/infer/internal/report"
	"github.com/freegit9527/infer/pkg/shared/config"
	"github.com/freegit9527/infer/pkg/shared/logger"
)

// RunOptionsDiff holds the arguments for the diff command.
type RunOptionsDiff struct {
	Report         string
	PreviousReport string
	Costs          string
	PreviousCosts  string
	Output         string
	NoFiltering    bool
	DeveloperMode  bool
}

var (
	AppConfig        *config.Config
	diffOptions      RunOptionsDiff
	exampleDiffUsage = `  # Compute the differential between two analysis snapshots
  inferdiff diff --report report.json --previous-report previous-report.json \
    --costs costs-report.json --previous-costs previous-costs-report.json --output ./differential

  # Keep duplicate findings with identical trace endpoints
  inferdiff diff --report report.json --previous-report previous-report.json \
    --costs costs-report.json --previous-costs previous-costs-report.json --no-filtering`
)

// DiffCmd represents the diff command.
var DiffCmd = &cobra.Command{
	Use:                   "diff --report PATH --previous-report PATH --costs PATH --previous-costs PATH [--output PATH]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleDiffUsage,
	Short:                 "Classify findings between two runs and report cost regressions",
	RunE:                  runDiffCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runDiffCommand executes the diff command.
func runDiffCommand(cmd *cobra.Command, args []string) error {
	logger := logger.NewLogger(AppConfig, "core-diff")

	if err := validateDiffArgs(&diffOptions, AppConfig); err != nil {
		logger.Error("invalid diff arguments", "error", err)
		return err
	}

	currentReport, err := report.Load(diffOptions.Report)
	if err != nil {
		return err
	}
	previousReport, err := report.Load(diffOptions.PreviousReport)
	if err != nil {
		return err
	}
	currentCosts, err := costs.Load(diffOptions.Costs)
	if err != nil {
		return err
	}
	previousCosts, err := costs.Load(diffOptions.PreviousCosts)
	if err != nil {
		return err
	}

	opts := differential.Options{
		Filtering:     !diffOptions.NoFiltering && config.GetBoolValue(AppConfig, "Reportdiff.Filtering", true),
		DeveloperMode: diffOptions.DeveloperMode || AppConfig.Reportdiff.DeveloperMode,
	}

	logger.Debug("computing differential",
		"current_findings", len(currentReport), "previous_findings", len(previousReport),
		"current_costs", len(currentCosts), "previous_costs", len(previousCosts),
		"filtering", opts.Filtering)

	result, err := differential.Compute(currentReport, previousReport, currentCosts, previousCosts, opts)
	if err != nil {
		logger.Error("failed to compute differential", "error", err)
		return err
	}

	if err := result.Save(diffOptions.Output); err != nil {
		logger.Error("failed to save differential", "destination", diffOptions.Output, "error", err)
		return err
	}

	logger.Info("differential saved",
		"run_id", result.RunID,
		"destination", diffOptions.Output,
		"introduced", len(result.Introduced),
		"fixed", len(result.Fixed),
		"preexisting", len(result.Preexisting))
	return nil
}

func init() {
	DiffCmd.Flags().StringVar(&diffOptions.Report, "report", "", "current report file")
	DiffCmd.Flags().StringVar(&diffOptions.PreviousReport, "previous-report", "", "previous report file")
	DiffCmd.Flags().StringVar(&diffOptions.Costs, "costs", "", "current costs report file")
	DiffCmd.Flags().StringVar(&diffOptions.PreviousCosts, "previous-costs", "", "previous costs report file")
	DiffCmd.Flags().StringVarP(&diffOptions.Output, "output", "o", "", "destination folder for the differential artifacts")
	DiffCmd.Flags().BoolVar(&diffOptions.NoFiltering, "no-filtering", false, "disable trace-endpoint deduplication")
	DiffCmd.Flags().BoolVar(&diffOptions.DeveloperMode, "dev", false, "append exact polynomial renderings to cost qualifiers")
}
