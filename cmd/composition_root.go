package cmd

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"orders/internal/adapters/out/deliverysvc"
	"orders/internal/adapters/out/metrics"
	"orders/internal/adapters/out/paymentsvc"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/out/productsvc"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/domain/services"
	"orders/internal/jobs"

	"gorm.io/gorm"
)

// remoteCallTimeout bounds each outbound validator call so one slow service
// cannot stall the whole fan-out indefinitely.
const remoteCallTimeout = 10 * time.Second

type CompositionRoot struct {
	config Config
	gormDB *gorm.DB
	logger *slog.Logger

	metricsEmitter *metrics.EMFEmitter
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:         config,
		gormDB:         gormDB,
		logger:         logger,
		metricsEmitter: metrics.NewEMFEmitter(config.Environment, os.Stdout),
	}
}

func (c *CompositionRoot) CreateOrderRepository() *orderrepo.GormOrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB)
}

// CreateValidationOrchestrator registers the business-rule validators in
// their fixed reporting order: delivery, payment, product.
func (c *CompositionRoot) CreateValidationOrchestrator() services.ValidationOrchestrator {
	httpClient := &http.Client{Timeout: remoteCallTimeout}

	return services.NewValidationOrchestrator(
		deliverysvc.NewClient(c.config.DeliveryServiceURL, httpClient, c.logger),
		paymentsvc.NewStub(),
		productsvc.NewClient(c.config.ProductsServiceURL, httpClient, c.logger),
	)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	orchestrator := c.CreateValidationOrchestrator()
	return commands.NewCreateOrderCommandHandler(
		c.CreateOrderRepository(),
		orchestrator,
		c.metricsEmitter,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.metricsEmitter, c.logger)
}
