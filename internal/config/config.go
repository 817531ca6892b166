package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	TripAPI   TripAPIConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
	Dashboard DashboardConfig
	Map       MapConfig
	Session   SessionConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins []string
}

// TripAPIConfig - настройки внешнего API с данными поездок
type TripAPIConfig struct {
	BaseURL        string
	RequestTimeout int // seconds
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled    bool
	MetricsTTL time.Duration
	HeatmapTTL time.Duration
	TripsTTL   time.Duration
}

type LogConfig struct {
	Level string
}

// DashboardConfig - параметры отрисовки дашборда
type DashboardConfig struct {
	Locale          string
	HeatmapLimit    int
	TripsLimit      int
	ConcurrentFetch bool
	DefaultStart    string
	DefaultEnd      string
}

type MapConfig struct {
	CenterLat float64
	CenterLon float64
	Zoom      int
}

type SessionConfig struct {
	IdleTTL       time.Duration
	SweepInterval time.Duration
	MaxSessions   int
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("DASHBOARD_CONCURRENT_FETCH", true)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		TripAPI: TripAPIConfig{
			BaseURL:        v.GetString("TRIP_API_BASE_URL"),
			RequestTimeout: v.GetInt("TRIP_API_TIMEOUT"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			Enabled:    v.GetBool("CACHE_ENABLED"),
			MetricsTTL: time.Duration(v.GetInt("METRICS_CACHE_TTL")) * time.Second,
			HeatmapTTL: time.Duration(v.GetInt("HEATMAP_CACHE_TTL")) * time.Second,
			TripsTTL:   time.Duration(v.GetInt("TRIPS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Dashboard: DashboardConfig{
			Locale:          v.GetString("DASHBOARD_LOCALE"),
			HeatmapLimit:    v.GetInt("DASHBOARD_HEATMAP_LIMIT"),
			TripsLimit:      v.GetInt("DASHBOARD_TRIPS_LIMIT"),
			ConcurrentFetch: v.GetBool("DASHBOARD_CONCURRENT_FETCH"),
			DefaultStart:    v.GetString("DASHBOARD_DEFAULT_START"),
			DefaultEnd:      v.GetString("DASHBOARD_DEFAULT_END"),
		},
		Map: MapConfig{
			CenterLat: v.GetFloat64("MAP_CENTER_LAT"),
			CenterLon: v.GetFloat64("MAP_CENTER_LON"),
			Zoom:      v.GetInt("MAP_ZOOM"),
		},
		Session: SessionConfig{
			IdleTTL:       time.Duration(v.GetInt("SESSION_IDLE_TTL")) * time.Second,
			SweepInterval: time.Duration(v.GetInt("SESSION_SWEEP_INTERVAL")) * time.Second,
			MaxSessions:   v.GetInt("SESSION_MAX"),
		},
	}

	if origins := v.GetString("API_CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.Server.CORSOrigins = append(cfg.Server.CORSOrigins, o)
			}
		}
	}

	// Set default values if not provided
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.TripAPI.BaseURL == "" {
		cfg.TripAPI.BaseURL = "http://localhost:5000"
	}
	if cfg.TripAPI.RequestTimeout == 0 {
		cfg.TripAPI.RequestTimeout = 30
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Cache.MetricsTTL == 0 {
		cfg.Cache.MetricsTTL = 60 * time.Second
	}
	if cfg.Cache.HeatmapTTL == 0 {
		cfg.Cache.HeatmapTTL = 60 * time.Second
	}
	if cfg.Cache.TripsTTL == 0 {
		cfg.Cache.TripsTTL = 30 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Dashboard.Locale == "" {
		cfg.Dashboard.Locale = "en-US"
	}
	if cfg.Dashboard.HeatmapLimit == 0 {
		cfg.Dashboard.HeatmapLimit = 8000
	}
	if cfg.Dashboard.TripsLimit == 0 {
		cfg.Dashboard.TripsLimit = 50
	}
	if cfg.Map.CenterLat == 0 && cfg.Map.CenterLon == 0 {
		cfg.Map.CenterLat = 40.73
		cfg.Map.CenterLon = -73.94
	}
	if cfg.Map.Zoom == 0 {
		cfg.Map.Zoom = 11
	}
	if cfg.Session.IdleTTL == 0 {
		cfg.Session.IdleTTL = 30 * time.Minute
	}
	if cfg.Session.SweepInterval == 0 {
		cfg.Session.SweepInterval = time.Minute
	}
	if cfg.Session.MaxSessions <= 0 {
		cfg.Session.MaxSessions = 1000
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// GetTripAPITimeout возвращает таймаут запросов к API поездок
func (c *Config) GetTripAPITimeout() time.Duration {
	return time.Duration(c.TripAPI.RequestTimeout) * time.Second
}
