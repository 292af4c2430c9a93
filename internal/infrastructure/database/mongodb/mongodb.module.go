package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"
)

// NewMongoClient degrada a un cliente desactivado si MongoDB no está
// disponible: la auditoría de exportaciones es best-effort y nunca
// impide el arranque de la API.
func NewMongoClient(config *MongoConfig) *Client {
	client, err := NewClient(config)
	if err != nil {
		fmt.Printf("[MONGODB] ⚠️  MongoDB no disponible - la auditoría de exportaciones queda desactivada: %v\n", err)
		return &Client{}
	}
	return client
}

var Module = fx.Options(
	fx.Provide(NewMongoClient),
	fx.Invoke(RegisterLifecycle),
)

func RegisterLifecycle(lc fx.Lifecycle, client *Client) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := client.Ping(timeoutCtx); err != nil {
				// No bloquea el arranque, la auditoría queda desactivada
				return nil
			}

			fmt.Printf("[MONGODB] ✅ MongoDB conectado y operativo\n")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close(ctx)
		},
	})
}
