package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/averycrespi/ecl-mcp/internal/workspace"
	"github.com/averycrespi/ecl-mcp/pkg/types"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable read into the configuration
	EnvPrefix = "ECL_MCP"
	// FileName is the config file looked up in the workspace root, without extension
	FileName = ".ecl-mcp"
)

// Flag names
const (
	FlagWorkspaceRoot  = "workspace-root"
	FlagLogLevel       = "log-level"
	FlagConfig         = "config"
	FlagMaxConcurrency = "max-concurrency"
)

// flagKeys maps flag names to configuration keys
var flagKeys = map[string]string{
	FlagWorkspaceRoot:  "workspace_root",
	FlagLogLevel:       "log_level",
	FlagMaxConcurrency: "max_concurrency",
}

// RegisterFlags defines the configuration flags on a flag set
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(FlagWorkspaceRoot, ".", "Root directory of the ECL workspace")
	flags.String(FlagLogLevel, "info", "Log level (debug, info, warn, error)")
	flags.String(FlagConfig, "", "Path to a config file (default: <workspace-root>/"+FileName+".yaml)")
	flags.Int(FlagMaxConcurrency, 0, "Maximum concurrent import lookups per request (0 means unlimited)")
}

// Load builds the configuration with increasing precedence from defaults,
// the config file, ECL_MCP_* environment variables and explicitly set flags.
// The result is validated and its workspace root made absolute.
func Load(flags *pflag.FlagSet) (types.Config, error) {
	_, config, err := load(flags)
	return config, err
}

// Watch loads the configuration like Load and calls onChange with the
// revalidated configuration whenever the config file is written.
// Without a config file there is nothing to watch and onChange is never called.
func Watch(flags *pflag.FlagSet, onChange func(types.Config)) (types.Config, error) {
	v, config, err := load(flags)
	if err != nil {
		return types.Config{}, err
	}

	if v.ConfigFileUsed() == "" {
		return config, nil
	}

	v.OnConfigChange(func(event fsnotify.Event) {
		if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}

		updated, err := decode(v)
		if err != nil {
			slog.Warn("Ignoring invalid config change", "path", event.Name, "error", err)
			return
		}

		slog.Info("Reloaded config file", "path", event.Name)
		onChange(updated)
	})
	v.WatchConfig()

	return config, nil
}

func load(flags *pflag.FlagSet) (*viper.Viper, types.Config, error) {
	v := viper.New()

	v.SetDefault("workspace_root", ".")
	v.SetDefault("log_level", "info")
	v.SetDefault("max_concurrency", 0)
	v.SetDefault("include", workspace.DefaultInclude)
	v.SetDefault("exclude_dirs", workspace.DefaultExcludeDirs)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var configFile string
	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, types.Config{}, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
		if flag := flags.Lookup(FlagConfig); flag != nil {
			configFile = flag.Value.String()
		}
	}

	if err := readConfigFile(v, configFile); err != nil {
		return nil, types.Config{}, err
	}

	config, err := decode(v)
	if err != nil {
		return nil, types.Config{}, err
	}

	return v, config, nil
}

func decode(v *viper.Viper) (types.Config, error) {
	var config types.Config
	if err := v.Unmarshal(&config); err != nil {
		return types.Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := Validate(&config); err != nil {
		return types.Config{}, err
	}

	return config, nil
}

func readConfigFile(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		slog.Debug("Loaded config file", "path", v.ConfigFileUsed())
		return nil
	}

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(v.GetString("workspace_root"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	slog.Debug("Loaded config file", "path", v.ConfigFileUsed())
	return nil
}

// Validate checks a configuration and converts its workspace root to an absolute path
func Validate(config *types.Config) error {
	if stat, err := os.Stat(config.WorkspaceRoot); err != nil || !stat.IsDir() {
		return fmt.Errorf("invalid workspace root: %s", config.WorkspaceRoot)
	}

	absPath, err := filepath.Abs(config.WorkspaceRoot)
	if err != nil {
		return fmt.Errorf("failed to resolve workspace root %s: %w", config.WorkspaceRoot, err)
	}
	config.WorkspaceRoot = absPath

	if _, err := ParseLogLevel(config.LogLevel); err != nil {
		return err
	}

	if config.MaxConcurrency < 0 {
		return fmt.Errorf("max concurrency must not be negative: %d", config.MaxConcurrency)
	}

	return nil
}

// ParseLogLevel parses a log level name such as "debug" or "WARN"
func ParseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}
