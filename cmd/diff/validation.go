package diff

import (
	"fmt"

	"github.com/freegit9527/infer/pkg/shared/config"
	"github.com/freegit9527/infer/pkg/shared/files"
)

// validateDiffArgs checks the diff command arguments and resolves the output
// folder from the configuration when the flag is omitted.
func validateDiffArgs(options *RunOptionsDiff, cfg *config.Config) error {
	inputs := map[string]string{
		"report":          options.Report,
		"previous-report": options.PreviousReport,
		"costs":           options.Costs,
		"previous-costs":  options.PreviousCosts,
	}
	for flag, path := range inputs {
		if path == "" {
			return fmt.Errorf("'%s' flag must be specified", flag)
		}
		if err := files.ValidatePath(path); err != nil {
			return fmt.Errorf("invalid '%s' file: %w", flag, err)
		}
	}

	if options.Output == "" {
		if cfg != nil && cfg.Reportdiff.ResultsFolder != "" {
			options.Output = cfg.Reportdiff.ResultsFolder
		} else {
			options.Output = "differential"
		}
	}

	expanded, err := files.ExpandPath(options.Output)
	if err != nil {
		return fmt.Errorf("failed to expand output path %q: %w", options.Output, err)
	}
	options.Output = expanded

	return nil
}
