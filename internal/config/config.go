package config

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/core/messenger"
	"github.com/gaze-network/bubblegum-indexer/internal/postgres"
	"github.com/gaze-network/bubblegum-indexer/internal/taskqueue"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger/slogx"
	"github.com/gaze-network/bubblegum-indexer/pkg/metrics"
	"github.com/gaze-network/bubblegum-indexer/pkg/middleware/requestcontext"
	"github.com/gaze-network/bubblegum-indexer/pkg/middleware/requestlogger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	isInit   bool
	mu       sync.Mutex
	config   = defaultConfig()
	instance = viper.New()
)

type Config struct {
	EnableModules []string             `mapstructure:"enable_modules"`
	APIOnly       bool                 `mapstructure:"api_only"`
	Logger        logger.Config        `mapstructure:"logger"`
	Network       common.Network       `mapstructure:"network"`
	HTTPServer    HTTPServerConfig     `mapstructure:"http_server"`
	Messenger     messenger.AMQPConfig `mapstructure:"messenger"`
	TaskQueue     taskqueue.Config     `mapstructure:"task_queue"`
	Metrics       metrics.Config       `mapstructure:"metrics"`
	Modules       Modules              `mapstructure:"modules"`
}

type Modules struct {
	Bubblegum BubblegumConfig `mapstructure:"bubblegum"`
}

type BubblegumConfig struct {
	Postgres postgres.Config `mapstructure:"postgres"`

	// Streams lists the streams to consume, ACCOUNT and/or TRANSACTION.
	Streams []string `mapstructure:"streams"`

	// MetadataWorkers is the number of concurrent downloads of the metadata worker.
	MetadataWorkers int `mapstructure:"metadata_workers"`

	// MetadataTimeout bounds one off-chain metadata download.
	MetadataTimeout time.Duration `mapstructure:"metadata_timeout"`

	// MetadataMaxBytes caps the size of a stored metadata document.
	MetadataMaxBytes int `mapstructure:"metadata_max_bytes"`
}

type HTTPServerConfig struct {
	Port      int                               `mapstructure:"port"`
	Logger    requestlogger.Config              `mapstructure:"logger"`
	RequestIP requestcontext.WithClientIPConfig `mapstructure:"request_ip"`
}

func defaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			Output: "TEXT",
		},
		Network: common.NetworkMainnet,
		HTTPServer: HTTPServerConfig{
			Port: 8080,
			Logger: requestlogger.Config{
				SkipPaths: []string{"/", "/metrics"},
			},
		},
		Messenger: messenger.AMQPConfig{
			Exchange:    "plerkle",
			QueuePrefix: "bubblegum",
			BatchSize:   100,
		},
		TaskQueue: taskqueue.Config{
			Exchange: "bubblegum.tasks",
			Queue:    "bubblegum.tasks.download_metadata",
			Prefetch: 32,
		},
		Metrics: metrics.Config{
			Enabled: true,
		},
		Modules: Modules{
			Bubblegum: BubblegumConfig{
				Streams:          []string{messenger.StreamAccount.String(), messenger.StreamTransaction.String()},
				MetadataWorkers:  8,
				MetadataTimeout:  10 * time.Second,
				MetadataMaxBytes: 1 << 20,
			},
		},
	}
}

// Parse reads configuration from file, environment variables and bound flags.
func Parse(configFile ...string) Config {
	mu.Lock()
	defer mu.Unlock()
	return parse(configFile...)
}

func parse(configFile ...string) Config {
	ctx := logger.WithContext(context.Background(), slog.String("package", "config"))

	if len(configFile) > 0 && configFile[0] != "" {
		instance.SetConfigFile(configFile[0])
	} else {
		instance.AddConfigPath("./")
		instance.SetConfigName("config")
	}

	instance.AutomaticEnv()
	instance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := instance.ReadInConfig(); err != nil {
		var errNotfound viper.ConfigFileNotFoundError
		if errors.As(err, &errNotfound) {
			logger.WarnContext(ctx, "Config file not found, use default value", slogx.Error(err))
		} else {
			logger.PanicContext(ctx, "Invalid config file", slogx.Error(err))
		}
	}

	if err := instance.Unmarshal(config); err != nil {
		logger.PanicContext(ctx, "Something went wrong, failed to unmarshal config", slogx.Error(err))
	}

	isInit = true
	return *config
}

// Load returns the parsed configuration, parsing it on first use.
func Load() Config {
	mu.Lock()
	defer mu.Unlock()
	if !isInit {
		return parse()
	}
	return *config
}

// BindPFlag binds a specific key to a pflag (as used by cobra).
func BindPFlag(key string, flag *pflag.Flag) {
	if err := instance.BindPFlag(key, flag); err != nil {
		logger.Panic("Something went wrong, failed to bind flag for config", slog.String("package", "config"), slogx.Error(err))
	}
}

// SetDefault sets the default value for the key.
func SetDefault(key string, value any) {
	instance.SetDefault(key, value)
}

// Validate checks the settings every command depends on.
func (c Config) Validate() error {
	if !c.Network.IsSupported() {
		return errors.Wrapf(errs.ConfigurationError, "%q network is not supported", c.Network.String())
	}
	for _, stream := range c.Modules.Bubblegum.Streams {
		switch messenger.Stream(stream) {
		case messenger.StreamAccount, messenger.StreamTransaction:
		default:
			return errors.Wrapf(errs.ConfigurationError, "unknown stream %q", stream)
		}
	}
	return nil
}
