package httpclient

import (
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/freegit9527/infer/pkg/shared/config"
)

// HclogAdapter adapts an hclog.Logger to be compatible with the resty log.Logger interface.
type HclogAdapter struct {
	logger hclog.Logger
}

// NewHclogAdapter creates a new adapter that will forward messages to a hclog.Logger.
func NewHclogAdapter(logger hclog.Logger) resty.Logger {
	return &HclogAdapter{logger: logger}
}

// Errorf logs a message at error level.
func (a *HclogAdapter) Errorf(format string, v ...interface{}) {
	a.logger.Error(fmt.Sprintf(format, v...))
}

// Warnf logs a message at warning level.
func (a *HclogAdapter) Warnf(format string, v ...interface{}) {
	a.logger.Warn(fmt.Sprintf(format, v...))
}

// Debugf logs a message at debug level.
func (a *HclogAdapter) Debugf(format string, v ...interface{}) {
	a.logger.Debug(fmt.Sprintf(format, v...))
}

// InitializeRestyClient initializes and configures a resty client based on the provided configuration.
func InitializeRestyClient(logger hclog.Logger, cfg *config.Config) *resty.Client {
	client := resty.New()
	if logger != nil {
		client.SetLogger(NewHclogAdapter(logger))
	}

	defaults := config.DefaultHTTPClient()
	httpConfig := defaults
	if cfg != nil {
		httpConfig = cfg.HTTPClient
		httpConfig.RetryCount = config.SetThen(httpConfig.RetryCount, defaults.RetryCount)
		httpConfig.RetryWaitTime = config.SetThen(httpConfig.RetryWaitTime, defaults.RetryWaitTime)
		httpConfig.RetryMaxWaitTime = config.SetThen(httpConfig.RetryMaxWaitTime, defaults.RetryMaxWaitTime)
		httpConfig.Timeout = config.SetThen(httpConfig.Timeout, defaults.Timeout)
	}

	client.
		SetDebug(httpConfig.Debug).
		SetRetryCount(httpConfig.RetryCount).
		SetRetryWaitTime(httpConfig.RetryWaitTime).
		SetRetryMaxWaitTime(httpConfig.RetryMaxWaitTime).
		SetTimeout(httpConfig.Timeout)

	return client
}
