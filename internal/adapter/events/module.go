package events

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/config"
)

// Module wires kafka publisher and its lifecycle.
var Module = fx.Options(
	fx.Provide(newPublisher),
	fx.Invoke(registerLifecycle),
)

type publisherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newPublisher(p publisherParams) *Publisher {
	return NewPublisher(p.Config.KafkaBrokers, p.Config.KafkaTopic, p.Config.EventBuffer, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, publisher *Publisher) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			publisher.Start()
			return nil
		},
		OnStop: func(context.Context) error {
			publisher.Close()
			return nil
		},
	})
}
