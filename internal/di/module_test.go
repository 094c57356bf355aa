package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/adapter/inventory"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/app"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/config"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/domain/repository"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/storage/postgres"
	"github.com/ChrisAle117/RefaccionesElBoom-sub001/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:        ":0",
		DatabaseURI:       "postgres://stub",
		InventoryAddress:  "http://localhost",
		RedisAddress:      "localhost:6379",
		KafkaBrokers:      []string{"localhost:9092"},
		KafkaTopic:        "order.payment.verified",
		JWTSecret:         "secret",
		OrderTTL:          time.Hour,
		SweepInterval:     time.Millisecond,
		SweepBatch:        1,
		ReconcileInterval: time.Millisecond,
		IncidenceCacheTTL: time.Millisecond,
		EventBuffer:       1,
		ShutdownTimeout:   time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()
	orderRepo := &test.OrderRepositoryStub{}
	productRepo := &test.ProductRepositoryStub{}
	stockRepo := &test.StockLedgerStub{}
	proofRepo := &test.PaymentProofRepositoryStub{}
	inventoryStub := &test.InventoryProviderStub{}

	var facade *app.StorefrontFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.ProductRepository(productRepo)),
			fx.Replace(repository.StockLedger(stockRepo)),
			fx.Replace(repository.PaymentProofRepository(proofRepo)),
			fx.Replace(inventory.Client(inventoryStub)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected storefront facade instance")
	}
}
