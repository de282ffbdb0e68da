package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/freegit9527/infer/cmd/diff"
	"github.com/freegit9527/infer/cmd/tosarif"
	"github.com/freegit9527/infer/cmd/upload"
	"github.com/freegit9527/infer/cmd/version"
	"github.com/freegit9527/infer/pkg/shared/config"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "inferdiff [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Inferdiff reconciles two static-analysis snapshots into a differential.",
		Long: `Inferdiff compares the current and previous report of a static-analysis run,
classifies every finding as introduced, fixed, or preexisting, and reports
cost-complexity regressions between the two per-procedure cost estimates.`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml)")
	rootCmd.AddCommand(diff.DiffCmd)
	rootCmd.AddCommand(tosarif.ToSarifCmd)
	rootCmd.AddCommand(upload.UploadCmd)
	rootCmd.AddCommand(version.NewVersionCmd())
}

func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return 1
	}
	return 0
}

func initConfig() {
	var err error

	if cfgFile == "" {
		cfgFile = "config.yml"
	}
	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize config: %v\n", err)
		os.Exit(1)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	diff.Init(AppConfig)
	tosarif.Init(AppConfig)
	upload.Init(AppConfig)
}
