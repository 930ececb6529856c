package cmd

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// LevelTrace is below slog.LevelDebug.
const LevelTrace = slog.Level(-8)

var (
	configFiles []string
	level       string

	// version is set at build time with -ldflags "-X".
	version string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "restresult",
	Short:         "build and snapshot analyzed REST resource descriptions",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&level, "level", "l", "info", "log level (trace, debug, info, warn, error, debug+1, etc)")
	rootCmd.PersistentFlags().StringSliceVar(&configFiles, "config", []string{}, "config file(s) - multiple config files are merged with last specified file having highest priority")
}

// parseLevel accepts slog level names plus "trace".
func parseLevel(s string) (slog.Level, error) {
	if strings.EqualFold(s, "trace") {
		return LevelTrace, nil
	}
	var ll slog.Level
	if err := ll.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return ll, nil
}

func setLogger(ll slog.Level) *slog.Logger {
	l := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: false,
		Level:     ll,
	}))
	slog.SetDefault(l)
	return l
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	ll, err := parseLevel(level)
	if err != nil {
		panic(err)
	}
	l := setLogger(ll)

	if len(configFiles) > 0 {
		// Use config file from the flag.
		viper.SetConfigFile(configFiles[0])
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/restresult")
		viper.SetConfigType("yaml")
		viper.SetConfigName("restresult")
	}

	viper.SetEnvPrefix("RESTRESULT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		l.With("config", viper.ConfigFileUsed()).Debug("using config file(s)")
	} else {
		l.With("error", err, "config", viper.ConfigFileUsed()).Debug("unable to use config file(s)")
	}
	if len(configFiles) > 1 {
		for _, file := range configFiles[1:] {
			if configBytes, err := os.ReadFile(file); err == nil {
				if err = viper.MergeConfig(bytes.NewReader(configBytes)); err != nil {
					l.With("error", err, "file", file).Warn("failed to merge config file")
				} else {
					l.With("file", file).Debug("merged config file")
				}
			}
		}
	}

	// a level from config applies only when --level was left at its default
	if llstr := viper.GetString("log.level"); llstr != "" && !rootCmd.PersistentFlags().Changed("level") {
		cl, err := parseLevel(llstr)
		if err != nil {
			panic(err)
		}
		setLogger(cl)
	}
}
