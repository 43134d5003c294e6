package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config contains all service configuration.
type Config struct {
	App      App      `envPrefix:"APP_"`
	Postgres Postgres `envPrefix:"POSTGRES_"`
	Redis    Redis    `envPrefix:"REDIS_"`
	Kafka    Kafka    `envPrefix:"KAFKA_"`
	JWT      JWT      `envPrefix:"JWT_"`
}

// App contains HTTP server and logging parameters.
type App struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Postgres contains database connection parameters.
type Postgres struct {
	Host         string `env:"HOST" envDefault:"localhost"`
	Port         int    `env:"PORT" envDefault:"5432"`
	User         string `env:"USER" envDefault:"user"`
	Password     string `env:"PASSWORD" envDefault:"password"`
	DB           string `env:"DB" envDefault:"database"`
	MaxOpenConns int    `env:"MAX_OPEN_CONNS" envDefault:"16"`
	MaxIdleConns int    `env:"MAX_IDLE_CONNS" envDefault:"8"`
}

// DSN builds a pgx connection string.
func (p Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.DB)
}

// Redis contains session store parameters.
type Redis struct {
	Host         string `env:"HOST" envDefault:"localhost"`
	Port         int    `env:"PORT" envDefault:"6379"`
	DB           int    `env:"DB" envDefault:"0"`
	Password     string `env:"PASSWORD"`
	PoolSize     int    `env:"POOL_SIZE" envDefault:"10"`
	MinIdleConns int    `env:"MIN_IDLE_CONNS" envDefault:"2"`
}

// Addr returns host:port.
func (r Redis) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Kafka contains event publishing parameters. Publishing is disabled when
// no brokers are configured.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"account-events"`

	// BatchTimeout bounds how long a partial batch waits before it is flushed.
	BatchTimeout time.Duration `env:"BATCH_TIMEOUT" envDefault:"10ms"`
	MaxAttempts  int           `env:"MAX_ATTEMPTS" envDefault:"3"`
}

// JWT contains token signing parameters, one secret per role.
type JWT struct {
	UserSecretKey      string        `env:"USER_SECRET_KEY" envDefault:"user_secret_key"`
	ModeratorSecretKey string        `env:"MODERATOR_SECRET_KEY" envDefault:"moderator_secret_key"`
	UserSignupTTL      time.Duration `env:"USER_SIGNUP_TTL" envDefault:"24h"`
	UserLoginTTL       time.Duration `env:"USER_LOGIN_TTL" envDefault:"168h"`
	ModeratorTTL       time.Duration `env:"MODERATOR_TTL" envDefault:"24h"`
}

// Load reads the optional dotenv file at path and parses the environment.
// Variables already set in the environment win over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.JWT.UserSecretKey == cfg.JWT.ModeratorSecretKey {
		return nil, fmt.Errorf("user and moderator JWT secrets must differ")
	}

	return &cfg, nil
}
