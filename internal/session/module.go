package session

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/fourline/orderfront/internal/config"
)

// Module wires the session store, choosing Redis when an address is
// configured and falling back to the in-memory store otherwise.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newStore(p storeParams) Store {
	if p.Config.RedisAddr == "" {
		return NewMemoryStore(p.Config.SessionTTL)
	}

	client := redis.NewClient(&redis.Options{Addr: p.Config.RedisAddr})
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return err
			}
			p.Logger.Info("session store using redis", slog.String("addr", p.Config.RedisAddr))
			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return NewRedisStore(client, p.Config.SessionTTL)
}
