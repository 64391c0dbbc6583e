// pkg/configs/redis.go
package configs

import (
	"os"
	"strconv"
)

// RedisConfig เก็บค่าการเชื่อมต่อ Redis
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// LoadRedisConfig อ่านค่าการเชื่อมต่อ Redis จาก environment
func LoadRedisConfig() *RedisConfig {
	db := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			db = parsed
		}
	}

	return &RedisConfig{
		Host:     envOrDefault("REDIS_HOST", "localhost"),
		Port:     envOrDefault("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	}
}
