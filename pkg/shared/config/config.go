package config

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// Config is the root of the YAML configuration file.
type Config struct {
	Logger     Logger     `yaml:"logger"`
	Reportdiff Reportdiff `yaml:"reportdiff"`
	HTTPClient HTTPClient `yaml:"http_client"`
}

type Logger struct {
	Level string `yaml:"level"`
}

// Reportdiff holds the settings of the differential computation itself.
type Reportdiff struct {
	// Filtering gates trace-endpoint deduplication. Unset means enabled.
	Filtering     *bool  `yaml:"filtering"`
	DeveloperMode bool   `yaml:"developer_mode"`
	ResultsFolder string `yaml:"results_folder"`
}

// HTTPClient configures the resty client used by the upload command.
type HTTPClient struct {
	Debug            bool          `yaml:"debug"`
	RetryCount       int           `yaml:"retry_count"`
	RetryWaitTime    time.Duration `yaml:"retry_wait_time"`
	RetryMaxWaitTime time.Duration `yaml:"retry_max_wait_time"`
	Timeout          time.Duration `yaml:"timeout"`
}

// DefaultHTTPClient returns the HTTP client settings applied when the
// config file leaves them unset.
func DefaultHTTPClient() HTTPClient {
	return HTTPClient{
		RetryCount:       5,
		RetryWaitTime:    1 * time.Second,
		RetryMaxWaitTime: 2 * time.Second,
		Timeout:          10 * time.Second,
	}
}

// LoadConfig reads and parses the YAML configuration file. A missing file
// is not an error: the tool is fully functional with defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to open config file %q: %w", configPath, err)
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", configPath, err)
	}

	return config, nil
}
