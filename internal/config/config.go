package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Payroll  PayrollConfig  `mapstructure:"payroll"`
	Mail     MailConfig     `mapstructure:"mail"`
}

type AppConfig struct {
	Env            string `mapstructure:"env"`
	Port           string `mapstructure:"port"`
	AllowedOrigins string `mapstructure:"allowed_origins"`
	UploadDir      string `mapstructure:"upload_dir"`
}

type DatabaseConfig struct {
	Host       string `mapstructure:"host"`
	User       string `mapstructure:"user"`
	Password   string `mapstructure:"password"`
	Name       string `mapstructure:"name"`
	Port       string `mapstructure:"port"`
	SSLMode    string `mapstructure:"sslmode"`
	MaxRetries int    `mapstructure:"max_retries"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type KafkaConfig struct {
	Broker        string        `mapstructure:"broker"`
	ConsumerGroup string        `mapstructure:"consumer_group"`
	PollInterval  time.Duration `mapstructure:"poll_interval"`
}

type AuthConfig struct {
	JWTSecret      string        `mapstructure:"jwt_secret"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
}

// StorageConfig menentukan cara path foto absensi diubah menjadi URL.
type StorageConfig struct {
	PublicBaseURL    string `mapstructure:"public_base_url"`
	CloudinaryName   string `mapstructure:"cloudinary_cloud_name"`
	CloudinaryKey    string `mapstructure:"cloudinary_api_key"`
	CloudinarySecret string `mapstructure:"cloudinary_api_secret"`
	CloudinaryFolder string `mapstructure:"cloudinary_folder"`
}

// MailConfig untuk SMTP. Tanpa user/password email hanya dicatat di log.
type MailConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

type PayrollConfig struct {
	Timezone   string `mapstructure:"timezone"`
	ShiftStart string `mapstructure:"shift_start"`
}

// envBindings menjaga nama env lama (DB_HOST, REDIS_ADDR, ...) tetap berlaku.
var envBindings = map[string]string{
	"app.env":                       "APP_ENV",
	"app.port":                      "PORT",
	"app.allowed_origins":           "ALLOWED_ORIGINS",
	"app.upload_dir":                "UPLOAD_DIR",
	"database.host":                 "DB_HOST",
	"database.user":                 "DB_USER",
	"database.password":             "DB_PASSWORD",
	"database.name":                 "DB_NAME",
	"database.port":                 "DB_PORT",
	"database.sslmode":              "DB_SSLMODE",
	"database.max_retries":          "DB_MAX_RETRIES",
	"redis.addr":                    "REDIS_ADDR",
	"redis.password":                "REDIS_PASSWORD",
	"redis.db":                      "REDIS_DB",
	"kafka.broker":                  "KAFKA_BROKER",
	"kafka.consumer_group":          "KAFKA_CONSUMER_GROUP",
	"kafka.poll_interval":           "KAFKA_POLL_INTERVAL",
	"auth.jwt_secret":               "JWT_SECRET",
	"auth.access_token_ttl":         "ACCESS_TOKEN_TTL",
	"storage.public_base_url":       "PUBLIC_BASE_URL",
	"storage.cloudinary_cloud_name": "CLOUDINARY_CLOUD_NAME",
	"storage.cloudinary_api_key":    "CLOUDINARY_API_KEY",
	"storage.cloudinary_api_secret": "CLOUDINARY_API_SECRET",
	"storage.cloudinary_folder":     "CLOUDINARY_FOLDER",
	"payroll.timezone":              "PAYROLL_TIMEZONE",
	"payroll.shift_start":           "PAYROLL_SHIFT_START",
	"mail.host":                     "SMTP_HOST",
	"mail.port":                     "SMTP_PORT",
	"mail.user":                     "SMTP_USER",
	"mail.password":                 "SMTP_PASS",
	"mail.from":                     "EMAIL_FROM",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "3000")
	v.SetDefault("app.allowed_origins", "http://localhost:5173")
	v.SetDefault("app.upload_dir", "uploads")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "peopledesk")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_retries", 5)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("kafka.broker", "")
	v.SetDefault("kafka.consumer_group", "peopledesk-payroll-cache")
	v.SetDefault("kafka.poll_interval", "3s")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.access_token_ttl", "24h")
	v.SetDefault("storage.public_base_url", "")
	v.SetDefault("storage.cloudinary_cloud_name", "")
	v.SetDefault("storage.cloudinary_api_key", "")
	v.SetDefault("storage.cloudinary_api_secret", "")
	v.SetDefault("storage.cloudinary_folder", "attendance")
	v.SetDefault("payroll.timezone", "Asia/Kolkata")
	v.SetDefault("payroll.shift_start", "09:30 AM")
	v.SetDefault("mail.host", "smtp.gmail.com")
	v.SetDefault("mail.port", "587")
	v.SetDefault("mail.user", "")
	v.SetDefault("mail.password", "")
	v.SetDefault("mail.from", "PeopleDesk HR <noreply@peopledesk.com>")
}

// Load membaca konfigurasi dari environment (dan config.yml opsional di path).
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yml")
	if len(paths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []string

	if c.Auth.JWTSecret == "" {
		errs = append(errs, "auth: JWT_SECRET is required")
	}
	if c.Database.MaxRetries < 1 {
		errs = append(errs, "database: max_retries must be >= 1")
	}
	if _, err := time.LoadLocation(c.Payroll.Timezone); err != nil {
		errs = append(errs, fmt.Sprintf("payroll: invalid timezone %q", c.Payroll.Timezone))
	}
	if c.Mail.Enabled() && (c.Mail.Host == "" || c.Mail.Port == "") {
		errs = append(errs, "mail: SMTP_HOST and SMTP_PORT are required when SMTP_USER is set")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Location mengembalikan zona waktu bisnis. Validate sudah memastikan nilainya valid.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Payroll.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) CloudinaryEnabled() bool {
	return c.Storage.CloudinaryEnabled()
}

func (s StorageConfig) CloudinaryEnabled() bool {
	return s.CloudinaryName != "" && s.CloudinaryKey != "" && s.CloudinarySecret != ""
}

func (m MailConfig) Enabled() bool {
	return m.User != "" && m.Password != ""
}
