package main

import (
	"context"
	"log"

	"historial-clinico-core/internal/app"

	"go.uber.org/fx"
)

func main() {

	fx.New(
		app.AppModule,
		fx.Invoke(func(lifecycle fx.Lifecycle) {
			lifecycle.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					log.Println("Historial Clinico API starting...")
					return nil
				},
				OnStop: func(ctx context.Context) error {
					log.Println("Historial Clinico API stopping...")
					return nil
				},
			})
		}),
	).Run()
}
