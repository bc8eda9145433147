package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/Nour60555/Graduation-Project-KDD/pkg/utils"
)

type Config struct {
	AppEnv   string
	Port     string
	LogLevel string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string

	PredictURL         string
	PredictTimeout     time.Duration
	SessionTTL         time.Duration
	DonationOTPCode    string
	DonationPendingTTL time.Duration
}

// OTPLength sama dengan panjang kode yang diterima form donasi.
const OTPLength = 6

var (
	cfg  *Config
	once sync.Once
)

// LoadConfig membaca .env sekali saja lalu menyusun Config lewat Load.
func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Warn(".env file not found, relying on environment variables")
		}
		c, err := Load()
		if err != nil {
			log.Fatalf("invalid configuration: %v", err)
		}
		cfg = c
	})
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_USER", "")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_HOST", "")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_NAME", "kidney_care")
	v.SetDefault("JWT_SECRET_KEY", "")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("PREDICT_URL", "http://127.0.0.1:9000/predict")
	v.SetDefault("PREDICT_TIMEOUT", "10s")
	v.SetDefault("SESSION_TTL", "30m")
	v.SetDefault("DONATION_OTP_CODE", "123456")
	v.SetDefault("DONATION_PENDING_TTL", "15m")
}

// Load menyusun Config dari default, config.toml (opsional) dan environment.
// Nama file bisa diganti lewat CONFIG_NAME.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	configName := "config"
	if name := os.Getenv("CONFIG_NAME"); name != "" {
		configName = name
	}
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	c := &Config{
		AppEnv:             v.GetString("APP_ENV"),
		Port:               v.GetString("PORT"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		DBUser:             v.GetString("DB_USER"),
		DBPassword:         v.GetString("DB_PASSWORD"),
		DBHost:             v.GetString("DB_HOST"),
		DBPort:             v.GetString("DB_PORT"),
		DBName:             v.GetString("DB_NAME"),
		JWTSecret:          v.GetString("JWT_SECRET_KEY"),
		AdminUsername:      v.GetString("ADMIN_USERNAME"),
		AdminPasswordHash:  v.GetString("ADMIN_PASSWORD_HASH"),
		PredictURL:         v.GetString("PREDICT_URL"),
		PredictTimeout:     v.GetDuration("PREDICT_TIMEOUT"),
		SessionTTL:         v.GetDuration("SESSION_TTL"),
		DonationOTPCode:    v.GetString("DONATION_OTP_CODE"),
		DonationPendingTTL: v.GetDuration("DONATION_PENDING_TTL"),
	}

	if u, err := url.ParseRequestURI(c.PredictURL); err != nil || u.Host == "" {
		return nil, fmt.Errorf("PREDICT_URL %q is not an absolute URL", c.PredictURL)
	}
	if c.PredictTimeout <= 0 {
		return nil, fmt.Errorf("PREDICT_TIMEOUT must be a positive duration")
	}
	if c.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be a positive duration")
	}
	// Kode OTP yang diketik user dipotong menjadi 6 digit, jadi kode lain tidak akan pernah cocok.
	if len(c.DonationOTPCode) != OTPLength || utils.DigitsOnly(c.DonationOTPCode) != c.DonationOTPCode {
		return nil, fmt.Errorf("DONATION_OTP_CODE must be exactly %d digits", OTPLength)
	}
	if c.DonationPendingTTL <= 0 {
		return nil, fmt.Errorf("DONATION_PENDING_TTL must be a positive duration")
	}
	return c, nil
}

// DatabaseEnabled melaporkan apakah riwayat prediksi dan donasi disimpan ke MariaDB.
func (c *Config) DatabaseEnabled() bool {
	return c.DBHost != ""
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
