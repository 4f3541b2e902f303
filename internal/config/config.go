package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	SessionTTL string `yaml:"session_ttl"`
}

type PhoneConfig struct {
	DefaultCountryCode string `yaml:"default_country_code"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type FirebaseConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type OnboardingConfig struct {
	DraftTTL string `yaml:"draft_ttl"`
}

type ConfigFile struct {
	App        AppConfig        `yaml:"app"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	JWT        JWTConfig        `yaml:"jwt"`
	Phone      PhoneConfig      `yaml:"phone"`
	Twilio     TwilioConfig     `yaml:"twilio"`
	Firebase   FirebaseConfig   `yaml:"firebase"`
	Casbin     CasbinConfig     `yaml:"casbin"`
	Onboarding OnboardingConfig `yaml:"onboarding"`
}

type Config struct {
	Port                string
	GinMode             string
	DSN                 string
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	JWTSecret           string
	JWTIssuer           string
	SessionTTL          time.Duration
	DefaultCountryCode  string
	TwilioSID           string
	TwilioToken         string
	TwilioFrom          string
	FirebaseCredentials string
	CasbinModelPath     string
	DraftTTL            time.Duration
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	sessionTTL, err := time.ParseDuration(configFile.JWT.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}

	draftTTL, err := time.ParseDuration(configFile.Onboarding.DraftTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid onboarding draft TTL: %w", err)
	}

	return &Config{
		Port:                fmt.Sprintf("%d", configFile.App.Port),
		GinMode:             configFile.App.GinMode,
		DSN:                 env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:           env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:       env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:             configFile.Redis.DB,
		JWTSecret:           env("JWT_SECRET", configFile.JWT.Secret),
		JWTIssuer:           configFile.JWT.Issuer,
		SessionTTL:          sessionTTL,
		DefaultCountryCode:  configFile.Phone.DefaultCountryCode,
		TwilioSID:           env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID),
		TwilioToken:         env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken),
		TwilioFrom:          env("TWILIO_FROM_NUMBER", configFile.Twilio.FromNumber),
		FirebaseCredentials: env("GOOGLE_APPLICATION_CREDENTIALS", configFile.Firebase.CredentialsFile),
		CasbinModelPath:     configFile.Casbin.ModelPath,
		DraftTTL:            draftTTL,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
