package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrUsage возвращается, если передано неверное число позиционных аргументов
// или, без аргументов, в окружении нет DB_NAME, DB_PORT и DB_USER
var ErrUsage = errors.New("usage: mechanicshop <dbname> <port> <user>")

// Стратегии выдачи первичных ключей
const (
	IDStrategyMax      = "max"      // MAX(id)+1 под блокировкой таблицы в транзакции
	IDStrategySequence = "sequence" // nextval/currval последовательности <table>_<col>_seq
)

// Форматы вывода отчетов
const (
	ReportFormatList  = "list"
	ReportFormatTable = "table"
)

// Config содержит всю конфигурацию приложения
type Config struct {
	Database DatabaseConfig
	Shop     ShopConfig
	Logger   LoggerConfig
}

// DatabaseConfig содержит настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// ShopConfig содержит настройки поведения меню
type ShopConfig struct {
	IDStrategy   string
	ReportFormat string
}

// LoggerConfig содержит настройки логирования
type LoggerConfig struct {
	Level  string
	Format string // json или console
	Output string // stderr, stdout или путь к файлу
}

// Load загружает конфигурацию из переменных окружения и позиционных аргументов
// <dbname> <port> <user>. Аргументы имеют приоритет над DB_NAME, DB_PORT и DB_USER;
// без аргументов все три должны быть заданы в окружении или .env.
func Load(args []string) (*Config, error) {
	if len(args) != 0 && len(args) != 3 {
		return nil, ErrUsage
	}

	// Загружаем .env файл (игнорируем ошибку, если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            os.Getenv("DB_PORT"),
			User:            os.Getenv("DB_USER"),
			Password:        os.Getenv("DB_PASSWORD"),
			Database:        os.Getenv("DB_NAME"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getIntEnv("DB_MAX_OPEN_CONNS", 1),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Shop: ShopConfig{
			IDStrategy:   strings.ToLower(getEnv("SHOP_ID_STRATEGY", IDStrategyMax)),
			ReportFormat: strings.ToLower(getEnv("SHOP_REPORT_FORMAT", ReportFormatList)),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
			Output: getEnv("LOG_OUTPUT", "stderr"),
		},
	}

	if len(args) == 3 {
		cfg.Database.Database = args[0]
		cfg.Database.Port = args[1]
		cfg.Database.User = args[2]
	}

	if cfg.Database.Database == "" || cfg.Database.Port == "" || cfg.Database.User == "" {
		return nil, ErrUsage
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения, которые нельзя молча заменить значением по умолчанию
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Database.Port); err != nil {
		return fmt.Errorf("invalid port %q: %w", c.Database.Port, err)
	}
	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be positive, got %d", c.Database.MaxOpenConns)
	}

	switch c.Shop.IDStrategy {
	case IDStrategyMax, IDStrategySequence:
	default:
		return fmt.Errorf("unknown SHOP_ID_STRATEGY %q", c.Shop.IDStrategy)
	}

	switch c.Shop.ReportFormat {
	case ReportFormatList, ReportFormatTable:
	default:
		return fmt.Errorf("unknown SHOP_REPORT_FORMAT %q", c.Shop.ReportFormat)
	}

	return nil
}

// URL возвращает строку подключения к PostgreSQL в формате postgres://
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode,
	)
}

// Address возвращает <host>:<port>/<dbname> без учетных данных - для логов
func (c *DatabaseConfig) Address() string {
	return fmt.Sprintf("%s:%s/%s", c.Host, c.Port, c.Database)
}

// Вспомогательные функции для чтения переменных окружения

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
