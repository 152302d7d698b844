package config

import (
	"errors"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config defines the app configuration.
type Config struct {
	Server struct {
		Port int    `yaml:"port" env:"PORT" env-default:"4000"`
		Env  string `yaml:"env" env:"ENV" env-default:"development"`
	} `yaml:"server"`
	Database struct {
		DSN            string `yaml:"dsn" env:"DSN"`
		MaxOpenConns   int    `yaml:"max_open_conns" env:"MAXOPENCONNS" env-default:"25"`
		MaxIdleConns   int    `yaml:"max_idle_conns" env:"MAXIDLECONNS" env-default:"25"`
		MaxIdleTime    string `yaml:"max_idle_time" env:"MAXIDLETIME" env-default:"15m"`
		MigrateOnStart bool   `yaml:"migrate_on_start" env:"MIGRATEONSTART" env-default:"false"`
		UseMock        bool   `yaml:"use_mock" env:"USE_MOCK_DB" env-default:"false"`
	} `yaml:"database"`
	Limiter struct {
		RPS     float64 `yaml:"rps" env:"RPS" env-default:"4"`
		Burst   int     `yaml:"burst" env:"BURST" env-default:"8"`
		Enabled bool    `yaml:"enabled" env:"LENABLED" env-default:"true"`
	} `yaml:"limiter"`
	Cors struct {
		TrustedOrigins []string `yaml:"trusted_origins" env:"TRUSTEDORIGINS" env-separator:" "`
	} `yaml:"cors"`
	Metrics struct {
		Enabled bool `yaml:"enabled" env:"MENABLED" env-default:"true"`
	} `yaml:"metrics"`
	BasicAuth struct {
		Username string `yaml:"username" env:"BASICAUTHUSERNAME"`
		Password string `yaml:"password" env:"BASICAUTHPASSWORD"`
	} `yaml:"basic_auth"`
	Challenge struct {
		TTL time.Duration `yaml:"ttl" env:"CHALLENGETTL" env-default:"10m"`
	} `yaml:"challenge"`
	Moderation struct {
		RulesFile string `yaml:"rules_file" env:"MODERATIONRULES"`
	} `yaml:"moderation"`
	Users struct {
		DefaultProfilePicture string `yaml:"default_profile_picture" env:"DEFAULTPROFILEPICTURE" env-default:"/static/images/default-profile.png"`
	} `yaml:"users"`
}

// Decode reads the configuration from the YAML file at path and then applies
// environment overrides. A missing file is not an error: the environment and
// the env-default tags are used on their own.
func Decode(path string) (Config, error) {
	var cfg Config
	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return Config{}, err
			}
			return cfg, nil
		case !errors.Is(err, os.ErrNotExist):
			return Config{}, err
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
