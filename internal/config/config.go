package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Storage   StorageConfig
	Tracing   TracingConfig `mapstructure:"tracing"`
	Redis     RedisConfig
	LMS       LMSConfig       `mapstructure:"lms"`
	NLP       NLPConfig       `mapstructure:"nlp"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	ForceMigrate bool `mapstructure:"-"` // 强制执行数据库迁移
	MigrateOnly  bool `mapstructure:"-"` // 仅迁移模式（迁移后退出）
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	ExpireTime time.Duration `mapstructure:"expire_hours"`
}

type StorageConfig struct {
	Type          string `mapstructure:"type"`
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type LMSConfig struct {
	MoodleBaseURL          string `mapstructure:"moodle_base_url"`
	BlackboardBaseURL      string `mapstructure:"blackboard_base_url"`
	BlackboardClientID     string `mapstructure:"blackboard_client_id"`
	BlackboardClientSecret string `mapstructure:"blackboard_client_secret"`
	TimeoutSeconds         int    `mapstructure:"timeout_seconds"`
	CourseCacheMinutes     int    `mapstructure:"course_cache_minutes"`
}

// NLPConfig 响应生成的阈值与意图触发词，支持热更新
type NLPConfig struct {
	SupportCompound    float64             `mapstructure:"support_compound"`
	SupportNegative    float64             `mapstructure:"support_negative"`
	SupportNeutral     float64             `mapstructure:"support_neutral"`
	FallbackConfidence float64             `mapstructure:"fallback_confidence"`
	IntentPatterns     map[string][]string `mapstructure:"intent_patterns"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("NAIRA")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// JWT
	viper.BindEnv("jwt.secret", "JWT_SECRET")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Storage
	viper.BindEnv("storage.type", "STORAGE_TYPE")
	viper.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("storage.minio_bucket", "MINIO_BUCKET")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	// LMS
	viper.BindEnv("lms.moodle_base_url", "MOODLE_BASE_URL")
	viper.BindEnv("lms.blackboard_base_url", "BLACKBOARD_BASE_URL")
	viper.BindEnv("lms.blackboard_client_id", "BLACKBOARD_CLIENT_ID")
	viper.BindEnv("lms.blackboard_client_secret", "BLACKBOARD_CLIENT_SECRET")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.JWT.ExpireTime = cfg.JWT.ExpireTime * time.Hour

	// 生产环境校验 JWT Secret 强度
	if cfg.Server.Mode == "release" && len(cfg.JWT.Secret) < 32 {
		return nil, fmt.Errorf("JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(cfg.JWT.Secret))
	}

	applyNLPDefaults(&cfg.NLP)

	if cfg.LMS.TimeoutSeconds <= 0 {
		cfg.LMS.TimeoutSeconds = 10
	}
	if cfg.LMS.CourseCacheMinutes <= 0 {
		cfg.LMS.CourseCacheMinutes = 10
	}

	if cfg.Storage.Type == "local" {
		if _, err := os.Stat(cfg.Storage.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Storage.LocalPath, 0755)
		}
	}

	return &cfg, nil
}

// applyNLPDefaults 填充未配置的阈值与默认意图触发词
func applyNLPDefaults(cfg *NLPConfig) {
	if cfg.SupportCompound == 0 {
		cfg.SupportCompound = -0.5
	}
	if cfg.SupportNegative == 0 {
		cfg.SupportNegative = 0.5
	}
	if cfg.SupportNeutral == 0 {
		cfg.SupportNeutral = 0.5
	}
	if cfg.FallbackConfidence == 0 {
		cfg.FallbackConfidence = 0.5
	}
	if len(cfg.IntentPatterns) == 0 {
		cfg.IntentPatterns = map[string][]string{
			"academic_query":    {"how to", "explain", "what is", "define"},
			"task_management":   {"create task", "add task", "remind me", "schedule"},
			"emotional_support": {"feeling", "stressed", "worried", "anxious"},
			"time_management":   {"organize", "plan", "schedule", "manage time"},
			"study_technique":   {"study method", "learn better", "memorize", "understand"},
		}
	}
}
