package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Source   SourceConfig   `yaml:"source" mapstructure:"source"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Report   ReportConfig   `yaml:"report" mapstructure:"report"`
	Registry RegistryConfig `yaml:"registry" mapstructure:"registry"`
	Pipeline PipelineConfig `yaml:"pipeline" mapstructure:"pipeline"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// SourceConfig selects the input tree and the extraction anchor.
type SourceConfig struct {
	Root         string `yaml:"root" mapstructure:"root"`
	FolderPrefix string `yaml:"folder_prefix" mapstructure:"folder_prefix"`
	Marker       string `yaml:"marker" mapstructure:"marker"`
}

// OutputConfig locates the merged workbook.
type OutputConfig struct {
	Dir      string `yaml:"dir" mapstructure:"dir"`
	Workbook string `yaml:"workbook" mapstructure:"workbook"`
}

// ReportConfig names the report artifacts inside the output dir. An
// empty name disables that artifact.
type ReportConfig struct {
	Text    string `yaml:"text" mapstructure:"text"`
	HTML    string `yaml:"html" mapstructure:"html"`
	Summary string `yaml:"summary" mapstructure:"summary"`
}

// RegistryConfig locates the local run registry.
type RegistryConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// PipelineConfig tunes run behavior.
type PipelineConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("XLMERGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("source.root", "")
	v.SetDefault("source.folder_prefix", "优")
	v.SetDefault("source.marker", "身份证号")
	v.SetDefault("output.dir", "out")
	v.SetDefault("output.workbook", "merged.xlsx")
	v.SetDefault("report.text", "report.txt")
	v.SetDefault("report.html", "report.html")
	v.SetDefault("report.summary", "summary.yaml")
	v.SetDefault("registry.path", "xlmerge.db")
	v.SetDefault("pipeline.workers", 1)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
