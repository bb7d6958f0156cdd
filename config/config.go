// file: config/config.go
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	MySQLDSN  string
	RedisAddr string

	JWTSecret string

	// 文件上传相关
	UploadDir     string
	MaxUploadSize int64

	// 报名规则
	TeamMaxSize  int
	TeamCodeBase int
}

// C 是全局配置，测试未调用 Load 时也有可用的默认值
var C = defaults()

func defaults() *Config {
	return &Config{
		Port:          "8080",
		MySQLDSN:      "root:123456@tcp(localhost:3306)/tec_portal?charset=utf8mb4&parseTime=True&loc=Local",
		RedisAddr:     "localhost:6379",
		JWTSecret:     "a-very-secure-secret-that-should-be-in-env",
		UploadDir:     "./public/uploads",
		MaxUploadSize: 5 * 1024 * 1024,
		TeamMaxSize:   5,
		TeamCodeBase:  12300,
	}
}

// Load 从 .env / 环境变量加载配置，缺省值保持不变
func Load() *Config {
	_ = godotenv.Load()

	cfg := defaults()
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.MySQLDSN = getEnv("MYSQL_DSN", cfg.MySQLDSN)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.UploadDir = getEnv("UPLOAD_DIR", cfg.UploadDir)

	if v, err := strconv.ParseInt(getEnv("MAX_UPLOAD_SIZE", ""), 10, 64); err == nil && v > 0 {
		cfg.MaxUploadSize = v
	}
	if v, err := strconv.Atoi(getEnv("TEAM_MAX_SIZE", "")); err == nil && v > 0 {
		cfg.TeamMaxSize = v
	}
	if v, err := strconv.Atoi(getEnv("TEAM_CODE_BASE", "")); err == nil && v > 0 {
		cfg.TeamCodeBase = v
	}

	C = cfg
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
