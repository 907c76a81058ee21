package config

import (
	"os"
	"strconv"
	"time"

	"food-ordering-api/models"

	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	Database int    `yaml:"database"`
}

type AuthConfig struct {
	JWTSecret     string        `yaml:"jwt_secret"`
	TokenTTLHours int           `yaml:"token_ttl_hours"`
	TokenTTL      time.Duration `yaml:"-"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Auth     AuthConfig     `yaml:"auth"`
	Seed     bool           `yaml:"seed"`
}

// Load reads the yaml config file, then applies env-var overrides so deployments
// can run without a file at all.
func Load(filename string) (Config, error) {
	config := Config{
		Server:   ServerConfig{Port: "8080"},
		Database: DatabaseConfig{Path: "food_ordering.db"},
		Auth:     AuthConfig{JWTSecret: "food_ordering_super_secret_2024", TokenTTLHours: 24},
	}

	if file, err := os.Open(filename); err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return config, err
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		config.Server.Port = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		config.Database.Path = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.Auth.JWTSecret = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		config.Redis.Addr = v
	}
	if v := os.Getenv("SEED"); v != "" {
		config.Seed, _ = strconv.ParseBool(v)
	}

	if config.Auth.TokenTTLHours <= 0 {
		config.Auth.TokenTTLHours = 24
	}
	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTLHours) * time.Hour
	return config, nil
}

// InitDB opens the sqlite database and migrates all models.
func InitDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentMethod{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// InitRedis builds the optional catalog cache client. An empty addr means
// caching is disabled.
func InitRedis(cfg RedisConfig) *redis.Client {
	if cfg.Addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.Database,
	})
}
