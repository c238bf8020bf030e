package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	coreconfig "github.com/mattsolo1/grove-core/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mattsolo1/grove-tabgroups/pkg/service"
	"github.com/mattsolo1/grove-tabgroups/pkg/store"
	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
	"github.com/mattsolo1/grove-tabgroups/pkg/workspace"
)

var (
	cfgFile           string
	WorkspaceOverride string
)

// Extension is the "tabgroups" section of grove.yml. Values set there apply unless
// the tg config file or environment sets them too.
type Extension struct {
	DataDir       string `yaml:"data_dir"`
	RestoreWindow string `yaml:"restore_window"`
	DefaultColor  string `yaml:"default_color"`
}

func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "tg")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("TG")
	viper.AutomaticEnv()

	viper.SetDefault("data_dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "tg"))
	viper.SetDefault("restore_window", "10s")
	viper.SetDefault("default_color", string(tree.ColorDefault))
	viper.SetDefault("excerpt_length", 80)
	viper.SetDefault("log_level", "warn")

	// A missing config file is normal.
	_ = viper.ReadInConfig()
}

// NewLogger builds the stderr logger at the configured level.
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// applyExtension reads the tabgroups section of grove.yml.
func applyExtension(logger *logrus.Logger) {
	cfg, err := coreconfig.LoadDefault()
	if err != nil {
		logger.Debugf("could not load grove config, using tg settings only: %v", err)
		return
	}
	var ext Extension
	if err := cfg.UnmarshalExtension("tabgroups", &ext); err != nil {
		logger.WithError(err).Debug("Ignoring malformed tabgroups extension")
		return
	}
	mergeExtension(ext)
}

// mergeExtension installs grove.yml values as defaults, so the tg config file,
// environment and flags still override them.
func mergeExtension(ext Extension) {
	for key, value := range map[string]string{
		"data_dir":       ext.DataDir,
		"restore_window": ext.RestoreWindow,
		"default_color":  ext.DefaultColor,
	} {
		if value != "" {
			viper.SetDefault(key, value)
		}
	}
}

// ServiceConfig reads the session settings.
func ServiceConfig() (*service.Config, error) {
	cfg := service.DefaultConfig()

	window, err := time.ParseDuration(viper.GetString("restore_window"))
	if err != nil {
		return nil, fmt.Errorf("invalid restore_window: %w", err)
	}
	cfg.RestoreWindow = window

	color, err := tree.ParseColor(viper.GetString("default_color"))
	if err != nil {
		return nil, fmt.Errorf("invalid default_color: %w", err)
	}
	cfg.DefaultColor = color
	cfg.ExcerptLength = viper.GetInt("excerpt_length")
	return cfg, nil
}

// InitSession opens the current workspace's state and loads its tree. The store is
// returned so the caller can close it.
func InitSession(refresher service.Refresher) (*service.Session, *store.Store, error) {
	logger := NewLogger()
	applyExtension(logger)

	cfg, err := ServiceConfig()
	if err != nil {
		return nil, nil, err
	}

	ws, err := CurrentWorkspace()
	if err != nil {
		return nil, nil, err
	}

	// Scope by root so same-named checkouts keep separate trees.
	st, err := store.Open(viper.GetString("data_dir"), ws.Root)
	if err != nil {
		return nil, nil, err
	}

	entry := logger.WithFields(logrus.Fields{
		"component": "session",
		"workspace": ws.Name,
	})
	svc := service.New(cfg, st, refresher, entry)
	if err := svc.Load(); err != nil {
		// The session is usable with an empty tree.
		entry.WithError(err).Warn("Starting with empty tab groups")
	}
	return svc, st, nil
}

// CurrentWorkspace resolves the workspace of the --workspace path or the working
// directory.
func CurrentWorkspace() (workspace.Ref, error) {
	start := WorkspaceOverride
	if start == "" {
		var err error
		if start, err = os.Getwd(); err != nil {
			return workspace.Ref{}, fmt.Errorf("get working directory: %w", err)
		}
	}
	ws, err := workspace.Resolve(start)
	if err != nil {
		return workspace.Ref{}, fmt.Errorf("detect workspace: %w", err)
	}
	if err := ws.Validate(); err != nil {
		return workspace.Ref{}, err
	}
	return ws, nil
}

// OpenStore opens the state database without selecting a workspace's tree.
func OpenStore() (*store.Store, error) {
	applyExtension(NewLogger())
	return store.Open(viper.GetString("data_dir"), "")
}

func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/tg/config.yaml)")
	cmd.PersistentFlags().StringVarP(&WorkspaceOverride, "workspace", "W", "", "Override current workspace context by path")
}
