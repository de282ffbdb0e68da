package upload

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/freegit9527/infer/internal/dojo"
	"github.com/freegit9527/infer/pkg/shared/config"
	"github.com/freegit9527/infer/pkg/shared/files"
	"github.com/freegit9527/infer/pkg/shared/httpclient"
	"github.com/freegit9527/infer/pkg/shared/logger"
)

var dojoToken = os.Getenv("INFERDIFF_DEFECTDOJO_TOKEN")

// RunOptionsUpload holds the arguments for the upload command.
type RunOptionsUpload struct {
	URL         string
	Input       string
	ProductName string
	Engagement  string
}

var (
	AppConfig          *config.Config
	uploadOptions      RunOptionsUpload
	exampleUploadUsage = `  # Upload the introduced findings of a differential to DefectDojo
  inferdiff upload -u https://defectdojo.example.com -p github.com/acme/service \
    -i ./differential/introduced.sarif --engagement inferdiff-2e0c1f`
)

// UploadCmd represents the upload command.
var UploadCmd = &cobra.Command{
	Use:                   "upload --url/-u URL --product/-p NAME --input/-i PATH [--engagement NAME]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               exampleUploadUsage,
	Short:                 "Upload a SARIF differential artifact to DefectDojo",
	RunE:                  runUploadCommand,
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// runUploadCommand executes the upload command.
func runUploadCommand(cmd *cobra.Command, args []string) error {
	logger := logger.NewLogger(AppConfig, "core-upload")

	if err := validateUploadArgs(&uploadOptions); err != nil {
		logger.Error("invalid upload arguments", "error", err)
		return err
	}
	if dojoToken == "" {
		return fmt.Errorf("INFERDIFF_DEFECTDOJO_TOKEN environment variable must be set")
	}

	logger.Info("DefectDojo", "URL", uploadOptions.URL)

	httpc := httpclient.InitializeRestyClient(logger, AppConfig)
	dojoClient := dojo.New(httpc, uploadOptions.URL, dojoToken)

	productType, err := dojoClient.GetOrCreateProductType(dojo.ProductTypeInferdiffRepo)
	if err != nil {
		return err
	}

	product, err := dojoClient.GetOrCreateProduct(uploadOptions.ProductName, *productType)
	if err != nil {
		return err
	}

	engagement, err := dojoClient.CreateEngagement(*product, uploadOptions.Engagement)
	if err != nil {
		return err
	}

	if err := dojoClient.ImportScanResult(*engagement, uploadOptions.Input, dojo.ScanTypeSARIF); err != nil {
		return err
	}

	logger.Info("results uploaded", "product", product.Name, "engagement", engagement.ID)
	return nil
}

// validateUploadArgs checks the upload command arguments.
func validateUploadArgs(options *RunOptionsUpload) error {
	if options.URL == "" {
		return fmt.Errorf("'url' flag must be specified")
	}
	if options.ProductName == "" {
		return fmt.Errorf("'product' flag must be specified")
	}
	if options.Input == "" {
		return fmt.Errorf("'input' flag must be specified")
	}
	if err := files.ValidatePath(options.Input); err != nil {
		return fmt.Errorf("invalid 'input' file: %w", err)
	}
	if options.Engagement == "" {
		options.Engagement = "inferdiff"
	}
	return nil
}

func init() {
	UploadCmd.Flags().StringVarP(&uploadOptions.URL, "url", "u", "", "DefectDojo URL")
	UploadCmd.Flags().StringVarP(&uploadOptions.ProductName, "product", "p", "", "DefectDojo product name")
	UploadCmd.Flags().StringVarP(&uploadOptions.Input, "input", "i", "", "SARIF file to upload")
	UploadCmd.Flags().StringVar(&uploadOptions.Engagement, "engagement", "", "engagement name, e.g. the differential run id")
}
