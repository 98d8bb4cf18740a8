package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	log "github.com/sirupsen/logrus"
	"github.com/staffhub/vendorlink/internal/api"
	"github.com/staffhub/vendorlink/internal/config"
	"github.com/staffhub/vendorlink/internal/events"
	"github.com/staffhub/vendorlink/internal/logger"
	"github.com/staffhub/vendorlink/internal/metrics"
	"github.com/staffhub/vendorlink/internal/notifier"
	"github.com/staffhub/vendorlink/internal/repositories"
	"github.com/staffhub/vendorlink/internal/services"
)

func subscribeEventLogging(bus EventBus.Bus) {
	err := bus.Subscribe(events.VendorInvitedTopic, func(event events.VendorInvited) {
		log.Infof("vendor %v invited for country %v", event.PublicID, event.Country)
	})
	if err != nil {
		log.Fatalf("can't subscribe to vendor events: %v", err)
	}

	err = bus.Subscribe(events.VendorVerifiedTopic, func(event events.VendorVerified) {
		log.Infof("vendor %v verification finalized, accepted: %v, by admin: %v",
			event.PublicID, event.Accepted, event.ByAdmin)
	})
	if err != nil {
		log.Fatalf("can't subscribe to vendor events: %v", err)
	}

	err = bus.Subscribe(events.JobCreatedTopic, func(event events.JobCreated) {
		log.Infof("job %v created for country %v with %v assigned vendors",
			event.JobID, event.Country, event.AssignedVendors)
	})
	if err != nil {
		log.Fatalf("can't subscribe to job events: %v", err)
	}
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.API.MetricsPort)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	vendors := repositories.NewVendorRepository(dbContext.DB)
	cachedVendors := repositories.NewCachedVendors(vendors)
	jobs := repositories.NewJobRepository(dbContext.DB)
	employees := repositories.NewEmployeeRepository(dbContext.DB)

	publisher, err := notifier.NewPublisher(cfg.Notifier)
	if err != nil {
		log.Fatalf("can't create notification publisher: %v", err)
	}
	defer publisher.Close()

	bus := EventBus.New()
	subscribeEventLogging(bus)

	lifecycle := services.NewVendorLifecycle(vendors, publisher, cachedVendors, bus)
	assignments := services.NewJobAssignments(jobs, vendors, cachedVendors, bus)
	intake := services.NewEmployeeIntake(cachedVendors, jobs, employees)

	sweeper, err := services.NewSweeper(vendors, jobs)
	if err != nil {
		log.Fatalf("can't create sweeper: %v", err)
	}
	defer sweeper.Stop()

	server := api.NewServer(cfg.API,
		api.NewVendorHandler(lifecycle),
		api.NewJobHandler(assignments),
		api.NewEmployeeHandler(intake),
	)
	go func() {
		if err := server.Run(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("api server failed: %v", err)
		}
	}()
	log.Infof("api server listening on port %v", cfg.API.Port)

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("api server shutdown: %v", err)
	}
	log.Info("Services stopped.")
}
