package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Host        string
		Port        string
		User        string
		Pass        string
		Name        string
		AutoMigrate bool
	}
	Cache struct {
		Host string
		Port string
		Pass string
		DB   int
	}
	ServerAddress          string
	ContextTimeout         time.Duration
	JWTSecret              string
	BloomFilterSize        uint64
	LikeLockTTL            time.Duration
	LikeLockWait           time.Duration
	LikesReconcileInterval time.Duration
	LogLevel               string
	LogFormat              string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("DATABASE_HOST", "127.0.0.1")
	v.SetDefault("DATABASE_PORT", "3306")
	v.SetDefault("DATABASE_AUTO_MIGRATE", false)
	v.SetDefault("CACHE_HOST", "127.0.0.1")
	v.SetDefault("CACHE_PORT", "6379")
	v.SetDefault("CACHE_DB", 0)
	v.SetDefault("SERVER_ADDRESS", ":9090")
	v.SetDefault("CONTEXT_TIMEOUT", 30)
	v.SetDefault("BLOOM_FILTER_SIZE", uint64(10000000))
	v.SetDefault("LIKE_LOCK_TTL", "5s")
	v.SetDefault("LIKE_LOCK_WAIT", "2s")
	v.SetDefault("LIKES_RECONCILE_INTERVAL", "10m")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
}

// Load 读取 .env (可选) 和环境变量, 环境变量优先
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		logrus.Warnf("no .env file loaded, using process environment: %v", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{}
	cfg.Database.Host = v.GetString("DATABASE_HOST")
	cfg.Database.Port = v.GetString("DATABASE_PORT")
	cfg.Database.User = v.GetString("DATABASE_USER")
	cfg.Database.Pass = v.GetString("DATABASE_PASS")
	cfg.Database.Name = v.GetString("DATABASE_NAME")
	cfg.Database.AutoMigrate = v.GetBool("DATABASE_AUTO_MIGRATE")

	cfg.Cache.Host = v.GetString("CACHE_HOST")
	cfg.Cache.Port = v.GetString("CACHE_PORT")
	cfg.Cache.Pass = v.GetString("CACHE_PASS")
	cfg.Cache.DB = v.GetInt("CACHE_DB")

	cfg.ServerAddress = v.GetString("SERVER_ADDRESS")
	// CONTEXT_TIMEOUT 单位为秒
	cfg.ContextTimeout = time.Duration(v.GetInt("CONTEXT_TIMEOUT")) * time.Second
	cfg.JWTSecret = v.GetString("JWT_SECRET")
	cfg.BloomFilterSize = v.GetUint64("BLOOM_FILTER_SIZE")
	cfg.LikeLockTTL = v.GetDuration("LIKE_LOCK_TTL")
	cfg.LikeLockWait = v.GetDuration("LIKE_LOCK_WAIT")
	cfg.LikesReconcileInterval = v.GetDuration("LIKES_RECONCILE_INTERVAL")
	cfg.LogLevel = v.GetString("LOG_LEVEL")
	cfg.LogFormat = v.GetString("LOG_FORMAT")

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.ContextTimeout <= 0 {
		return nil, fmt.Errorf("CONTEXT_TIMEOUT must be positive")
	}
	if cfg.LikesReconcileInterval <= 0 {
		return nil, fmt.Errorf("LIKES_RECONCILE_INTERVAL must be positive")
	}
	return cfg, nil
}

// DSN builds the go-sql-driver/mysql data source name
func (c *Config) DSN() string {
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "Local")
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s",
		c.Database.User, c.Database.Pass, c.Database.Host, c.Database.Port, c.Database.Name, val.Encode())
}

func (c *Config) CacheAddr() string {
	return c.Cache.Host + ":" + c.Cache.Port
}

// SetupLogging configures the global logrus logger
func (c *Config) SetupLogging() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.Warnf("unknown LOG_LEVEL %q, falling back to info", c.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if c.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
