package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Role names a replica's part in the replication contract. Only the control
// replica publishes; everyone applies what it receives.
const (
	RoleControl  = "control"
	RoleAudience = "audience"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Sync struct {
		// Role decides whether this replica broadcasts its mutations.
		Role string `env:"SYNC_ROLE" envDefault:"audience"`
		// Channel is the shared pub/sub channel name; every replica of one
		// event must use the same value.
		Channel string `env:"SYNC_CHANNEL" envDefault:"draw-sync"`
		// Transport selects "redis" or "memory" (single process, tests).
		Transport string `env:"SYNC_TRANSPORT" envDefault:"redis"`
	}

	// DemoSeed loads the sample prize pool and participant roster on start.
	DemoSeed bool `env:"DEMO_SEED" envDefault:"false"`
}

func Load() *Config {
	// A missing .env file is fine; in production the variables are set
	// directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}

	return cfg
}
