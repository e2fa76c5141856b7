package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config application-wide configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Media    MediaConfig    `mapstructure:"media"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port        int   `mapstructure:"port"`
	MaxUploadMB int64 `mapstructure:"max_upload_mb"`
	// ReadTimeout bounds ordinary request bodies; POST /videos gets UploadTimeout instead
	ReadTimeout   time.Duration `mapstructure:"read_timeout"`
	UploadTimeout time.Duration `mapstructure:"upload_timeout"`
	CORS          CORSConfig    `mapstructure:"cors"`
}

// CORSConfig cross-origin settings
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig Azure SQL / SQL Server settings
type DatabaseConfig struct {
	Server          string `mapstructure:"server"`
	Port            int    `mapstructure:"port"`
	Name            string `mapstructure:"name"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	Encrypt         bool   `mapstructure:"encrypt"`
	AutoMigrate     bool   `mapstructure:"auto_migrate"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // minutes
}

// DSN builds the sqlserver:// connection string
func (c *DatabaseConfig) DSN() string {
	q := url.Values{}
	q.Set("database", c.Name)
	if c.Encrypt {
		q.Set("encrypt", "true")
		q.Set("TrustServerCertificate", "false")
	} else {
		q.Set("encrypt", "disable")
	}
	u := &url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Server, c.Port),
		RawQuery: q.Encode(),
	}
	return u.String()
}

// RedisConfig cache settings; an empty Addr disables Redis
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AuthConfig JWT and login settings
type AuthConfig struct {
	JWTSecret       string        `mapstructure:"jwt_secret"`
	AccessTokenTTL  time.Duration `mapstructure:"access_token_ttl"`
	LoginRateLimit  int           `mapstructure:"login_rate_limit"`
	LoginRateWindow time.Duration `mapstructure:"login_rate_window"`
}

// StorageConfig object store settings
type StorageConfig struct {
	Driver    string      `mapstructure:"driver"` // "azure" | "minio" | "memory"
	Container string      `mapstructure:"container"`
	Azure     AzureConfig `mapstructure:"azure"`
	Minio     MinioConfig `mapstructure:"minio"`
}

// AzureConfig Azure Blob Storage credentials
type AzureConfig struct {
	ConnectionString string `mapstructure:"connection_string"`
	AccountName      string `mapstructure:"account_name"`
	AccountKey       string `mapstructure:"account_key"`
}

// MinioConfig S3-compatible store credentials
type MinioConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// MediaConfig video pipeline settings
type MediaConfig struct {
	FFmpegPath       string        `mapstructure:"ffmpeg_path"`
	TranscodeTimeout time.Duration `mapstructure:"transcode_timeout"`
	Preset           string        `mapstructure:"preset"`
	CRF              int           `mapstructure:"crf"`
	ScratchDir       string        `mapstructure:"scratch_dir"`
	SASTTL           time.Duration `mapstructure:"sas_ttl"`
	ResignOnRead     bool          `mapstructure:"resign_on_read"`
	JournalPath      string        `mapstructure:"journal_path"`
	OrphanGrace      time.Duration `mapstructure:"orphan_grace"`
}

// LogConfig logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// envBindings maps config keys onto the unprefixed variables the deployment already sets.
var envBindings = map[string]string{
	"server.port":                     "PORT",
	"db.user":                         "DATABASE_USER",
	"db.password":                     "DATABASE_PASSWORD",
	"db.server":                       "DATABASE_SERVER",
	"db.name":                         "DATABASE_NAME",
	"auth.jwt_secret":                 "JWT_SECRET",
	"storage.azure.connection_string": "AZURE_STORAGE_CONNECTION_STRING",
	"storage.azure.account_name":      "AZURE_STORAGE_ACCOUNT_NAME",
	"storage.azure.account_key":       "AZURE_STORAGE_ACCOUNT_KEY",
}

// Load reads configuration from defaults, an optional config file and the environment.
// Precedence: environment > config file > defaults. A .env file in the working
// directory is loaded into the environment first when present.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()

	// ── defaults ──
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.max_upload_mb", 500)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.upload_timeout", "30m")
	v.SetDefault("server.cors.allow_origins", []string{"*"})

	v.SetDefault("db.server", "localhost")
	v.SetDefault("db.port", 1433)
	v.SetDefault("db.name", "hms")
	v.SetDefault("db.user", "sa")
	v.SetDefault("db.password", "")
	v.SetDefault("db.encrypt", true)
	v.SetDefault("db.auto_migrate", true)
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime", 60)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("auth.access_token_ttl", "1h")
	v.SetDefault("auth.login_rate_limit", 10)
	v.SetDefault("auth.login_rate_window", "1m")

	v.SetDefault("storage.driver", "azure")
	v.SetDefault("storage.container", "videos")
	v.SetDefault("storage.minio.use_ssl", false)

	v.SetDefault("media.ffmpeg_path", "ffmpeg")
	v.SetDefault("media.transcode_timeout", "10m")
	v.SetDefault("media.preset", "fast")
	v.SetDefault("media.crf", 23)
	v.SetDefault("media.scratch_dir", "")
	v.SetDefault("media.sas_ttl", "1h")
	v.SetDefault("media.resign_on_read", true)
	v.SetDefault("media.journal_path", "data/ingest.db")
	v.SetDefault("media.orphan_grace", "1h")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── config file ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── environment ──
	v.SetEnvPrefix("HMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings the process cannot start without
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("invalid config: JWT_SECRET must be set")
	}
	if len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("invalid config: JWT_SECRET must be at least 16 characters")
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("invalid config: auth.access_token_ttl must be positive")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid config: server.port must be between 1 and 65535")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.UploadTimeout <= 0 {
		return fmt.Errorf("invalid config: server.read_timeout and server.upload_timeout must be positive")
	}
	switch c.Storage.Driver {
	case "azure", "minio", "memory":
	default:
		return fmt.Errorf("invalid config: unknown storage.driver %q", c.Storage.Driver)
	}
	if c.Media.SASTTL <= 0 {
		return fmt.Errorf("invalid config: media.sas_ttl must be positive")
	}
	return nil
}
