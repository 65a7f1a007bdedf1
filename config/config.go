package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"

	"github.com/insiderdeals/storefront/pkg/common"
)

// SysConfig holds base system settings.
type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

// WebConfig holds the HTTP listener settings.
type WebConfig struct {
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	Secret string `yaml:"secret" json:"secret"`
}

// AdminConfig holds the admin gate secrets. These are never read from the
// YAML file, only from the environment; an empty value means the gate is
// unconfigured and authentication reports a configuration error.
type AdminConfig struct {
	Username string `yaml:"-" json:"-"`
	Password string `yaml:"-" json:"-"`
}

// DataConfig points at the static seed documents.
type DataConfig struct {
	ProductsFile string `yaml:"products_file" json:"products_file"`
	BlogsFile    string `yaml:"blogs_file" json:"blogs_file"`
}

// SessionConfig controls the admin session window.
type SessionConfig struct {
	// TTLHours is the rolling validity window computed at read time.
	TTLHours int `yaml:"ttl_hours" json:"ttl_hours"`
	// MaxAttempts failed logins within AttemptWindowSec trip the throttle.
	MaxAttempts      int `yaml:"max_attempts" json:"max_attempts"`
	AttemptWindowSec int `yaml:"attempt_window_sec" json:"attempt_window_sec"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System  SysConfig     `yaml:"system" json:"system"`
	Web     WebConfig     `yaml:"web" json:"web"`
	Admin   AdminConfig   `yaml:"admin" json:"admin"`
	Data    DataConfig    `yaml:"data" json:"data"`
	Session SessionConfig `yaml:"session" json:"session"`
	Logger  LoggerConfig  `yaml:"logger" json:"logger"`
}

func (c *AppConfig) GetLogDir() string {
	return filepath.Join(c.System.Workdir, "logs")
}

func (c *AppConfig) GetBackupDir() string {
	return filepath.Join(c.System.Workdir, "backup")
}

func (c *AppConfig) GetStoreFile() string {
	return filepath.Join(c.System.Workdir, "storefront.db")
}

// DefaultAppConfig is the base configuration; a YAML file and environment
// variables layer on top of it.
var DefaultAppConfig = AppConfig{
	System: SysConfig{
		Appid:    "Storefront",
		Location: "Asia/Kolkata",
		Workdir:  "/var/storefront",
		Debug:    true,
	},
	Web: WebConfig{
		Host:   "0.0.0.0",
		Port:   1816,
		Secret: "9b6de5cc-storefront-b712-7ccf-v1",
	},
	Data: DataConfig{
		ProductsFile: "data/products.json",
		BlogsFile:    "data/blogs.json",
	},
	Session: SessionConfig{
		TTLHours:         24,
		MaxAttempts:      5,
		AttemptWindowSec: 60,
	},
	Logger: LoggerConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "storefront.log",
	},
}

func setEnvStringValue(name string, f func(v string)) {
	if v := os.Getenv(name); v != "" {
		f(v)
	}
}

func setEnvIntValue(name string, f func(v int)) {
	if v := os.Getenv(name); v != "" {
		f(cast.ToInt(v))
	}
}

func setEnvBoolValue(name string, f func(v bool)) {
	if v := os.Getenv(name); v != "" {
		f(cast.ToBool(v))
	}
}

// LoadConfig reads configuration from the YAML file at cfile (when it
// exists) over the defaults, then applies environment overrides.
func LoadConfig(cfile string) *AppConfig {
	cfg := DefaultAppConfig
	if common.FileExists(cfile) {
		if data, err := os.ReadFile(cfile); err == nil {
			_ = yaml.Unmarshal(data, &cfg)
		}
	}

	setEnvStringValue("STOREFRONT_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvBoolValue("STOREFRONT_SYSTEM_DEBUG", func(v bool) { cfg.System.Debug = v })
	setEnvStringValue("STOREFRONT_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvIntValue("STOREFRONT_WEB_PORT", func(v int) { cfg.Web.Port = v })
	setEnvStringValue("STOREFRONT_WEB_SECRET", func(v string) { cfg.Web.Secret = v })
	setEnvStringValue("STOREFRONT_DATA_PRODUCTS", func(v string) { cfg.Data.ProductsFile = v })
	setEnvStringValue("STOREFRONT_DATA_BLOGS", func(v string) { cfg.Data.BlogsFile = v })
	setEnvIntValue("STOREFRONT_SESSION_TTL_HOURS", func(v int) { cfg.Session.TTLHours = v })
	setEnvStringValue("STOREFRONT_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })

	// Admin secrets are environment only.
	cfg.Admin.Username = os.Getenv("STOREFRONT_ADMIN_USERNAME")
	cfg.Admin.Password = os.Getenv("STOREFRONT_ADMIN_PASSWORD")

	return &cfg
}
