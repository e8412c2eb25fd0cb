package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/current_user"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/dashboard"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/get_product"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/list_notifications"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/list_products"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/list_sales"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/list_users"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/low_stock"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/queries/sales_report"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/repo"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/add_user"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/apply_sale"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/clear_notifications"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/create_product"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/delete_product"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/login"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/logout"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/mark_notification_read"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/update_product"
	"github.com/light-bringer/backoffice-service/internal/app/backoffice/usecases/update_user"
	"github.com/light-bringer/backoffice-service/internal/config"
	"github.com/light-bringer/backoffice-service/internal/pkg/clock"
	"github.com/light-bringer/backoffice-service/internal/pkg/kv"
	"github.com/light-bringer/backoffice-service/internal/transport/http/backoffice"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	KV       kv.Store
	Store    *repo.Store
	Commands backoffice.Commands
	Queries  backoffice.Queries
	Handler  *backoffice.Handler
}

// OpenKVStore connects to the backend selected by cfg.StoreBackend.
func OpenKVStore(ctx context.Context, cfg config.Config) (kv.Store, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		return kv.NewMemoryStore(), nil

	case config.BackendRedis:
		store, err := kv.NewRedisStore(ctx, kv.RedisOptions{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		return store, nil

	case config.BackendSpanner:
		store, err := kv.NewSpannerStore(ctx, cfg.SpannerDB)
		if err != nil {
			return nil, fmt.Errorf("failed to create Spanner client: %w", err)
		}
		return store, nil
	}

	return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}

// NewServiceOptions opens the configured backend and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg config.Config, logger logrus.FieldLogger) (*ServiceOptions, error) {
	store, err := OpenKVStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	opts, err := NewServiceOptionsWithStore(ctx, store, clock.NewRealClock(), cfg, logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return opts, nil
}

// NewServiceOptionsWithStore wires the application over an already open key-value store.
func NewServiceOptionsWithStore(
	ctx context.Context,
	store kv.Store,
	clk clock.Clock,
	cfg config.Config,
	logger logrus.FieldLogger,
) (*ServiceOptions, error) {
	// 1. Load (or seed) the domain store
	domainStore, err := repo.Open(ctx, store, repo.NewKeys(cfg.KeyPrefix), clk, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open domain store: %w", err)
	}

	// 2. Create the read model
	readModel := repo.NewReadModel(domainStore)

	// 3. Create command use cases (write operations)
	commands := backoffice.Commands{
		CreateProduct:        create_product.NewInteractor(domainStore, clk),
		UpdateProduct:        update_product.NewInteractor(domainStore, clk),
		DeleteProduct:        delete_product.NewInteractor(domainStore),
		ApplySale:            apply_sale.NewInteractor(domainStore, clk, cfg.MissingProduct, logger),
		MarkNotificationRead: mark_notification_read.NewInteractor(domainStore),
		ClearNotifications:   clear_notifications.NewInteractor(domainStore),
		AddUser:              add_user.NewInteractor(domainStore),
		UpdateUser:           update_user.NewInteractor(domainStore),
		Login:                login.NewInteractor(domainStore, logger),
		Logout:               logout.NewInteractor(domainStore),
	}

	// 4. Create query use cases (read operations)
	queries := backoffice.Queries{
		GetProduct:        get_product.NewQuery(readModel),
		ListProducts:      list_products.NewQuery(readModel),
		LowStock:          low_stock.NewQuery(readModel),
		ListSales:         list_sales.NewQuery(readModel),
		ListNotifications: list_notifications.NewQuery(readModel),
		ListUsers:         list_users.NewQuery(readModel),
		CurrentUser:       current_user.NewQuery(readModel),
		Dashboard:         dashboard.NewQuery(readModel),
		SalesReport:       sales_report.NewQuery(readModel, clk),
	}

	// 5. Create HTTP handler
	handler := backoffice.NewHandler(commands, queries, logger)

	return &ServiceOptions{
		KV:       store,
		Store:    domainStore,
		Commands: commands,
		Queries:  queries,
		Handler:  handler,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.KV != nil {
		_ = s.KV.Close()
	}
}
