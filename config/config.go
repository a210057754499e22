// config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

// Enabled reports whether the snapshot store should be wired up at all. The
// service runs fine without a database; it just loses the last-good fallback.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != "" && c.DBName != ""
}

type SheetConfig struct {
	CSVURL          string        `yaml:"csv_url"`
	FetchTimeoutStr string        `yaml:"fetch_timeout"`
	FetchTimeout    time.Duration `yaml:"-"` // parsed from FetchTimeoutStr
}

type SiteConfig struct {
	Title        string `yaml:"title"`
	ContactEmail string `yaml:"contact_email"`
	Timezone     string `yaml:"timezone"`

	Location *time.Location `yaml:"-"` // resolved from Timezone
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Sheet    SheetConfig    `yaml:"sheet"`
	Site     SiteConfig     `yaml:"site"`
}

var AppConfig Config

// LoadConfig reads configuration from the YAML file, then applies overrides
// from the environment. A .env file next to the binary is loaded first if
// present, so local runs can keep the sheet URL out of the config file.
func LoadConfig(configPath string) error {
	// Missing .env is the normal case in deployment; env vars are set directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Config: loaded environment overrides from .env")
	}

	if configPath != "" {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, &AppConfig); err != nil {
			return fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	applyEnvOverrides()

	if AppConfig.Server.Port == "" {
		AppConfig.Server.Port = "8080"
	}
	if AppConfig.Site.Title == "" {
		AppConfig.Site.Title = "Happy Hours"
	}

	if AppConfig.Sheet.FetchTimeoutStr != "" {
		d, err := time.ParseDuration(AppConfig.Sheet.FetchTimeoutStr)
		if err != nil {
			return fmt.Errorf("failed to parse sheet fetch_timeout: %w", err)
		}
		AppConfig.Sheet.FetchTimeout = d
	} else {
		AppConfig.Sheet.FetchTimeout = 30 * time.Second
	}

	if AppConfig.Site.Timezone != "" {
		loc, err := time.LoadLocation(AppConfig.Site.Timezone)
		if err != nil {
			return fmt.Errorf("failed to load site timezone %q: %w", AppConfig.Site.Timezone, err)
		}
		AppConfig.Site.Location = loc
	} else {
		AppConfig.Site.Location = time.Local
	}

	return nil
}

func applyEnvOverrides() {
	overrides := []struct {
		env    string
		target *string
	}{
		{"PORT", &AppConfig.Server.Port},
		{"SHEET_CSV_URL", &AppConfig.Sheet.CSVURL},
		{"SITE_TITLE", &AppConfig.Site.Title},
		{"CONTACT_EMAIL", &AppConfig.Site.ContactEmail},
		{"SITE_TIMEZONE", &AppConfig.Site.Timezone},
		{"DB_HOST", &AppConfig.Database.Host},
		{"DB_PORT", &AppConfig.Database.Port},
		{"DB_USER", &AppConfig.Database.User},
		{"DB_PASSWORD", &AppConfig.Database.Password},
		{"DB_NAME", &AppConfig.Database.DBName},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.env); v != "" {
			*o.target = v
		}
	}
}
