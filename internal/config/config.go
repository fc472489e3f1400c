package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// DataSourceRemote - mosques are read from the Manara HTTP API
	DataSourceRemote = "remote"
	// DataSourceMock - mosques are read from the bundled static dataset
	DataSourceMock = "mock"

	// FilterModeServer - the upstream narrows the collection by q/city_id itself
	FilterModeServer = "server"
	// FilterModeClient - the upstream returns the full collection, filtering happens here
	FilterModeClient = "client"
)

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Breaker  BreakerConfig
	Redis    RedisConfig
	Session  SessionConfig
	Map      MapConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host             string
	Port             int
	Env              string
	CORSAllowOrigins string
}

type UpstreamConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	FilterMode     string
	DataSource     string
}

type BreakerConfig struct {
	Enabled      bool
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	FailureRatio float64
	MinRequests  uint32
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type SessionConfig struct {
	CookieName    string
	TTL           time.Duration
	SweepInterval time.Duration
}

type MapConfig struct {
	CenterLat       float64
	CenterLon       float64
	Zoom            int
	TileURL         string
	TileAttribution string
}

type LogConfig struct {
	Level string
}

// Load reads .env from the working directory (if present) and the environment.
func Load() (*Config, error) {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit env file path.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:             v.GetString("API_HOST"),
			Port:             v.GetInt("API_PORT"),
			Env:              v.GetString("API_ENV"),
			CORSAllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Upstream: UpstreamConfig{
			BaseURL:        strings.TrimRight(v.GetString("UPSTREAM_BASE_URL"), "/"),
			RequestTimeout: time.Duration(v.GetInt("UPSTREAM_TIMEOUT")) * time.Second,
			FilterMode:     strings.ToLower(v.GetString("UPSTREAM_FILTER_MODE")),
			DataSource:     strings.ToLower(v.GetString("DATA_SOURCE")),
		},
		Breaker: BreakerConfig{
			Enabled:      v.GetBool("BREAKER_ENABLED"),
			MaxRequests:  v.GetUint32("BREAKER_MAX_REQUESTS"),
			Interval:     time.Duration(v.GetInt("BREAKER_INTERVAL")) * time.Second,
			Timeout:      time.Duration(v.GetInt("BREAKER_TIMEOUT")) * time.Second,
			FailureRatio: v.GetFloat64("BREAKER_FAILURE_RATIO"),
			MinRequests:  v.GetUint32("BREAKER_MIN_REQUESTS"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			CookieName:    v.GetString("SESSION_COOKIE_NAME"),
			TTL:           time.Duration(v.GetInt("SESSION_TTL")) * time.Second,
			SweepInterval: time.Duration(v.GetInt("SESSION_SWEEP_INTERVAL")) * time.Second,
		},
		Map: MapConfig{
			CenterLat:       v.GetFloat64("MAP_CENTER_LAT"),
			CenterLon:       v.GetFloat64("MAP_CENTER_LON"),
			Zoom:            v.GetInt("MAP_ZOOM"),
			TileURL:         v.GetString("MAP_TILE_URL"),
			TileAttribution: v.GetString("MAP_TILE_ATTRIBUTION"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000")

	v.SetDefault("UPSTREAM_BASE_URL", "https://manara-service.rabeh.sy")
	v.SetDefault("UPSTREAM_TIMEOUT", 10)
	v.SetDefault("UPSTREAM_FILTER_MODE", FilterModeClient)
	v.SetDefault("DATA_SOURCE", DataSourceRemote)

	v.SetDefault("BREAKER_ENABLED", true)
	v.SetDefault("BREAKER_MAX_REQUESTS", 3)
	v.SetDefault("BREAKER_INTERVAL", 30)
	v.SetDefault("BREAKER_TIMEOUT", 60)
	v.SetDefault("BREAKER_FAILURE_RATIO", 0.6)
	v.SetDefault("BREAKER_MIN_REQUESTS", 5)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("SESSION_COOKIE_NAME", "manara_session")
	v.SetDefault("SESSION_TTL", 1800)
	v.SetDefault("SESSION_SWEEP_INTERVAL", 60)

	// Syria, as in the original map view
	v.SetDefault("MAP_CENTER_LAT", 34.8021)
	v.SetDefault("MAP_CENTER_LON", 38.9968)
	v.SetDefault("MAP_ZOOM", 7)
	v.SetDefault("MAP_TILE_URL", "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png")
	v.SetDefault("MAP_TILE_ATTRIBUTION", "© OpenStreetMap contributors")

	v.SetDefault("LOG_LEVEL", "info")
}

func (c *Config) validate() error {
	switch c.Upstream.DataSource {
	case DataSourceRemote, DataSourceMock:
	default:
		return fmt.Errorf("invalid DATA_SOURCE %q: expected %s or %s", c.Upstream.DataSource, DataSourceRemote, DataSourceMock)
	}

	switch c.Upstream.FilterMode {
	case FilterModeServer, FilterModeClient:
	default:
		return fmt.Errorf("invalid UPSTREAM_FILTER_MODE %q: expected %s or %s", c.Upstream.FilterMode, FilterModeServer, FilterModeClient)
	}

	if c.Upstream.DataSource == DataSourceRemote && c.Upstream.BaseURL == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL is required when DATA_SOURCE=%s", DataSourceRemote)
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}

	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}
