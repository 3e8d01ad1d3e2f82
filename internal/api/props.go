package api

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// ServerProperties are read from the environment so deployments can tune the
// listener without touching the check configuration file.
type ServerProperties struct {
	Bind         string        `env:"CHECKCONNECT_BIND, default=0.0.0.0"`
	Port         int           `env:"CHECKCONNECT_PORT, default=8080"`
	ReadTimeout  time.Duration `env:"CHECKCONNECT_READ_TIMEOUT, default=30s"`
	WriteTimeout time.Duration `env:"CHECKCONNECT_WRITE_TIMEOUT, default=30s"`
	IdleTimeout  time.Duration `env:"CHECKCONNECT_IDLE_TIMEOUT, default=60s"`
}

func NewServerProperties(ctx context.Context) (ServerProperties, error) {
	var props ServerProperties
	if err := envconfig.Process(ctx, &props); err != nil {
		return ServerProperties{}, err
	}

	return props, nil
}
