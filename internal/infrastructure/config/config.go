package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App     AppConfig
	Mongo   MongoConfig
	Storage StorageConfig
	Drive   DriveConfig
	Import  ImportConfig
	Log     LogConfig
	HTTP    HTTPConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// MongoConfig holds document store connection settings
type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	QueryTimeout   time.Duration
}

// StorageConfig holds S3-compatible blob storage settings
type StorageConfig struct {
	Backend      string // s3 or drive
	Endpoint     string
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	UseSSL       bool
	UsePathStyle bool
	PublicBase   string // base URL prepended to object keys in stored URLs
}

// DriveConfig holds the OAuth settings for the remote-drive storage backend
type DriveConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
	UploadURL    string
	Scopes       []string
	FolderID     string
}

// ImportConfig holds bulk import settings
type ImportConfig struct {
	Dir string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	MaxBodySize      int64
	CORSAllowOrigins []string
}

// Load loads configuration from TOML file and environment variables.
// Priority (highest to lowest):
// 1. Environment variables with BOOKSHELF_ prefix (e.g., BOOKSHELF_MONGO_URI)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("BOOKSHELF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Mongo: MongoConfig{
			URI:            v.GetString("mongo.uri"),
			Database:       v.GetString("mongo.database"),
			ConnectTimeout: v.GetDuration("mongo.connect_timeout"),
			QueryTimeout:   v.GetDuration("mongo.query_timeout"),
		},
		Storage: StorageConfig{
			Backend:      v.GetString("storage.backend"),
			Endpoint:     v.GetString("storage.endpoint"),
			Region:       v.GetString("storage.region"),
			Bucket:       v.GetString("storage.bucket"),
			AccessKey:    v.GetString("storage.access_key"),
			SecretKey:    v.GetString("storage.secret_key"),
			UseSSL:       v.GetBool("storage.use_ssl"),
			UsePathStyle: v.GetBool("storage.use_path_style"),
			PublicBase:   v.GetString("storage.public_base"),
		},
		Drive: DriveConfig{
			ClientID:     v.GetString("drive.client_id"),
			ClientSecret: v.GetString("drive.client_secret"),
			RedirectURL:  v.GetString("drive.redirect_url"),
			AuthURL:      v.GetString("drive.auth_url"),
			TokenURL:     v.GetString("drive.token_url"),
			UploadURL:    v.GetString("drive.upload_url"),
			Scopes:       v.GetStringSlice("drive.scopes"),
			FolderID:     v.GetString("drive.folder_id"),
		},
		Import: ImportConfig{
			Dir: v.GetString("import.dir"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:      v.GetDuration("http.read_timeout"),
			WriteTimeout:     v.GetDuration("http.write_timeout"),
			IdleTimeout:      v.GetDuration("http.idle_timeout"),
			MaxBodySize:      v.GetInt64("http.max_body_size"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required settings
func (c *Config) Validate() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("mongo.uri is required")
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("mongo.database is required")
	}
	switch c.Storage.Backend {
	case "s3", "drive", "stub":
	default:
		return fmt.Errorf("storage.backend must be one of s3, drive, stub (got %q)", c.Storage.Backend)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "bookshelf-backend")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "5001")

	v.SetDefault("mongo.uri", "mongodb://localhost:27017")
	v.SetDefault("mongo.database", "bookshelf")
	v.SetDefault("mongo.connect_timeout", 10*time.Second)
	v.SetDefault("mongo.query_timeout", 30*time.Second)

	v.SetDefault("storage.backend", "s3")
	v.SetDefault("storage.endpoint", "http://localhost:9000")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.bucket", "bookshelf")
	v.SetDefault("storage.use_ssl", false)
	v.SetDefault("storage.use_path_style", true)

	v.SetDefault("import.dir", "./import")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("http.read_timeout", 30*time.Second)
	v.SetDefault("http.write_timeout", 60*time.Second)
	v.SetDefault("http.idle_timeout", 120*time.Second)
	v.SetDefault("http.max_body_size", int64(64<<20)) // book PDFs arrive inline
	v.SetDefault("http.cors_allow_origins", []string{})
}
