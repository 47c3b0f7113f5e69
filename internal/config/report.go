package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// ReportConfig tunes report generation without code changes.
type ReportConfig struct {
	Title                 string `mapstructure:"title"`
	Type                  string `mapstructure:"type"`
	Format                string `mapstructure:"format"`
	TopCustomers          int    `mapstructure:"topCustomers"`
	NewCustomerWindowDays int    `mapstructure:"newCustomerWindowDays"`
}

func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		Title:                 "Business Report",
		Type:                  "summary",
		Format:                "json",
		TopCustomers:          10,
		NewCustomerWindowDays: 30,
	}
}

type ReportConfigHolder struct {
	current atomic.Value // holds ReportConfig
}

// NewReportConfigHolder reads report.yml if present, falling back to coded
// defaults, and keeps the value fresh on file change.
func NewReportConfigHolder(appCfg Config) (*ReportConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("report")
	v.SetConfigType("yml")
	if appCfg.Report.Path != "" {
		v.AddConfigPath(appCfg.Report.Path)
	}
	v.AddConfigPath("/etc/invoicedesk")
	v.AddConfigPath(".")

	v.SetEnvPrefix("INVOICEDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	// UnmarshalKey ignores values registered with SetDefault, so defaults
	// for keys the file omits are merged afterwards instead.
	var cfg ReportConfig
	if err := v.UnmarshalKey("report", &cfg); err != nil {
		return nil, err
	}
	cfg = withReportDefaults(cfg)
	if err := validateReportConfig(cfg); err != nil {
		return nil, err
	}

	holder := &ReportConfigHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated ReportConfig
		if err := v.UnmarshalKey("report", &updated); err != nil {
			log.Printf("[report-config] reload failed: %v", err)
			return
		}
		updated = withReportDefaults(updated)
		if err := validateReportConfig(updated); err != nil {
			log.Printf("[report-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[report-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *ReportConfigHolder) Get() ReportConfig {
	return h.current.Load().(ReportConfig)
}

// withReportDefaults fills fields the file left unset.
func withReportDefaults(cfg ReportConfig) ReportConfig {
	defaults := DefaultReportConfig()
	if cfg.Title == "" {
		cfg.Title = defaults.Title
	}
	if cfg.Type == "" {
		cfg.Type = defaults.Type
	}
	if cfg.Format == "" {
		cfg.Format = defaults.Format
	}
	if cfg.TopCustomers == 0 {
		cfg.TopCustomers = defaults.TopCustomers
	}
	if cfg.NewCustomerWindowDays == 0 {
		cfg.NewCustomerWindowDays = defaults.NewCustomerWindowDays
	}
	return cfg
}

func validateReportConfig(cfg ReportConfig) error {
	if cfg.TopCustomers <= 0 {
		return errors.New("report.topCustomers must be positive")
	}
	if cfg.NewCustomerWindowDays <= 0 {
		return errors.New("report.newCustomerWindowDays must be positive")
	}
	return nil
}
