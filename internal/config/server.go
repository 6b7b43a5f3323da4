package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Server holds process settings loaded from the environment.
type Server struct {
	HTTP     HTTPConfig
	Store    StoreConfig
	Game     GameConfig
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

type HTTPConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"SERVER_PORT" default:"42069"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	RateLimitRPS    float64       `envconfig:"RATE_LIMIT_RPS" default:"10"`
	RateLimitBurst  int           `envconfig:"RATE_LIMIT_BURST" default:"20"`
	CORSOrigins     []string      `envconfig:"CORS_ORIGINS" default:"*"`
	DevStatic       bool          `envconfig:"DEV_STATIC" default:"false"`
	StaticDir       string        `envconfig:"STATIC_DIR" default:"static"`
}

type StoreConfig struct {
	Type       string `envconfig:"STORE_TYPE" default:"file"` // memory, file, sqlite or redis
	DataDir    string `envconfig:"DATA_DIR" default:"data"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:""`

	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     int    `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	RedisPrefix   string `envconfig:"REDIS_PREFIX" default:"gameyoutube:"`
}

type GameConfig struct {
	Premium     bool   `envconfig:"PREMIUM" default:"false"`
	RNGSeed     uint64 `envconfig:"RNG_SEED" default:"0"`
	BalanceFile string `envconfig:"BALANCE_FILE" default:""`
}

// Address returns the server address in host:port format.
func (h HTTPConfig) Address() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

// RedisAddress returns the Redis address in host:port format.
func (s StoreConfig) RedisAddress() string {
	return fmt.Sprintf("%s:%d", s.RedisHost, s.RedisPort)
}

// LoadServer reads .env (if present) and the process environment.
func LoadServer() (*Server, error) {
	_ = godotenv.Load()

	var cfg Server
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Store.Type = strings.ToLower(strings.TrimSpace(cfg.Store.Type))
	return &cfg, nil
}

// LoadGameBalance resolves the difficulty preset and env tweaks, then applies
// the optional YAML file on top.
func LoadGameBalance(g GameConfig) (Balance, error) {
	bal := FromEnv()
	if strings.TrimSpace(g.BalanceFile) == "" {
		return bal, bal.Validate()
	}
	return LoadBalance(g.BalanceFile, bal)
}
