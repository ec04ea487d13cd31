package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"go-activity-stats/internal/model"
)

// EnvPrefix prefixes every environment override, e.g. ACTIVITY_STATS_FILE.
const EnvPrefix = "ACTIVITY_STATS"

// Config is the run configuration handed to the report pipeline
type Config struct {
	File string `mapstructure:"file"`

	ShowRun   bool `mapstructure:"run"`
	ShowWalk  bool `mapstructure:"walk"`
	ShowCycle bool `mapstructure:"cycle"`
	ShowOther bool `mapstructure:"other"`
	ShowAll   bool `mapstructure:"all"`

	FromYear int `mapstructure:"from-year"`
	ToYear   int `mapstructure:"to-year"`

	Export model.Export `mapstructure:",squash"`

	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`

	Addr            string `mapstructure:"addr"`
	ShutdownTimeout string `mapstructure:"shutdown-timeout"`
}

// Columns lists the selected column labels. No selection means every column.
func (c Config) Columns() []string {
	var labels []string
	for _, sel := range []struct {
		on    bool
		label string
	}{
		{c.ShowRun, model.LabelRun},
		{c.ShowWalk, model.LabelWalk},
		{c.ShowCycle, model.LabelCycle},
		{c.ShowOther, model.LabelOther},
		{c.ShowAll, model.LabelAll},
	} {
		if sel.on {
			labels = append(labels, sel.label)
		}
	}
	return labels
}

// NewFlagSet declares every recognized option with its default.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("file", "f", "cardioActivities.csv", "cardio activities .csv export (path or http(s) URL)")
	fs.BoolP("run", "r", false, "show running stats")
	fs.BoolP("walk", "w", false, "show walking stats")
	fs.BoolP("cycle", "c", false, "show cycling stats")
	fs.BoolP("other", "o", false, "show all other stats")
	fs.BoolP("all", "a", false, "show combined total stats")
	fs.Int("from-year", 0, "first year to report (default: earliest year in the data)")
	fs.Int("to-year", 0, "last year to report (default: current year + 1)")
	fs.String("export", "", "also export bucket stats to this .csv or .json file")
	fs.String("export-db", "", "also export bucket stats to this sqlite file")
	fs.String("output-dir", "", "place export files under <output-dir>/<run id>/")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("log-format", "console", "log format (console or json)")
	fs.String("addr", ":8080", "listen address for the API server")
	fs.String("shutdown-timeout", "5s", "API server graceful shutdown timeout")
	fs.String("config", "", "optional config file (yaml, json or toml)")
	return fs
}

// Load parses command-line args, then layers environment variables and an
// optional config file underneath them. Flags set explicitly always win.
func Load(name string, args []string) (Config, error) {
	fs := NewFlagSet(name)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.File == "" {
		return Config{}, fmt.Errorf("no input file given")
	}
	// Without --to-year the report ends the year after the current one
	lastYear := cfg.ToYear
	if lastYear == 0 {
		lastYear = time.Now().Year() + 1
	}
	if cfg.FromYear != 0 && cfg.FromYear > lastYear {
		return Config{}, fmt.Errorf("from-year %d is after the last reported year %d", cfg.FromYear, lastYear)
	}
	return cfg, nil
}
