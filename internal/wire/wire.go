// Package wire provides dependency injection for the AltiGreen application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/altigreen/internal/adapters/cli"
	"github.com/example/altigreen/internal/adapters/clock"
	"github.com/example/altigreen/internal/adapters/gemini"
	"github.com/example/altigreen/internal/adapters/sqlite"
	"github.com/example/altigreen/internal/app"
	"github.com/example/altigreen/internal/db"
	"github.com/example/altigreen/internal/ports/primary"
)

var (
	workOrderService primary.WorkOrderService
	syncService      primary.SyncService
	assistantService primary.AssistantService
	scannerService   primary.ScannerService
	auditService     primary.AuditService
	once             sync.Once
)

// WorkOrderService returns the singleton WorkOrderService instance.
func WorkOrderService() primary.WorkOrderService {
	once.Do(initServices)
	return workOrderService
}

// SyncService returns the singleton SyncService instance.
func SyncService() primary.SyncService {
	once.Do(initServices)
	return syncService
}

// AssistantService returns the singleton AssistantService instance.
func AssistantService() primary.AssistantService {
	once.Do(initServices)
	return assistantService
}

// ScannerService returns the singleton ScannerService instance.
func ScannerService() primary.ScannerService {
	once.Do(initServices)
	return scannerService
}

// AuditService returns the singleton AuditService instance.
func AuditService() primary.AuditService {
	once.Do(initServices)
	return auditService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	ctx := context.Background()

	// Get database connection
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Create repository adapters (secondary ports) - sqlite adapters with injected DB
	snapshots := sqlite.NewSnapshotRepository(database)
	assetRepo := sqlite.NewAssetRepository(database)
	auditRepo := sqlite.NewAuditLogRepository(database)
	logWriter := sqlite.NewLogWriterAdapter(auditRepo)

	// Sync machinery: toasts render to stdout, timers run on the wall clock
	sched := clock.NewScheduler()
	toast := app.NewToastEmitter(cliadapter.NewToastWriter(os.Stdout), sched)
	monitor := app.NewConnectivityMonitor(ctx, snapshots)
	coordinator := app.NewSyncCoordinator(ctx, monitor, snapshots, sched, toast)

	store, err := app.NewWorkOrderService(ctx, snapshots, logWriter)
	if err != nil {
		log.Fatalf("failed to initialize work order store: %v", err)
	}
	store.AddListener(coordinator)
	monitor.AddListener(coordinator)

	// Create services (primary ports implementation)
	workOrderService = store
	syncService = app.NewSyncService(monitor, coordinator)
	assistantService = app.NewAssistantService(gemini.NewClient(os.Getenv("ALTI_API_KEY")), snapshots, store)
	scannerService = app.NewScannerService(assetRepo)
	auditService = app.NewAuditService(auditRepo)
}

// WorkOrderAdapter returns a new WorkOrderAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func WorkOrderAdapter() *cliadapter.WorkOrderAdapter {
	return WorkOrderAdapterWithOutput(os.Stdout)
}

// WorkOrderAdapterWithOutput returns a new WorkOrderAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func WorkOrderAdapterWithOutput(out io.Writer) *cliadapter.WorkOrderAdapter {
	once.Do(initServices)
	return cliadapter.NewWorkOrderAdapter(workOrderService, out)
}

// SyncAdapter returns a new SyncAdapter writing to stdout.
func SyncAdapter() *cliadapter.SyncAdapter {
	once.Do(initServices)
	return cliadapter.NewSyncAdapter(syncService, os.Stdout)
}

// AssistantAdapter returns a new AssistantAdapter writing to stdout.
func AssistantAdapter() *cliadapter.AssistantAdapter {
	once.Do(initServices)
	return cliadapter.NewAssistantAdapter(assistantService, os.Stdout)
}

// ScannerAdapter returns a new ScannerAdapter writing to stdout.
func ScannerAdapter() *cliadapter.ScannerAdapter {
	once.Do(initServices)
	return cliadapter.NewScannerAdapter(scannerService, os.Stdout)
}

// AuditAdapter returns a new AuditAdapter writing to stdout.
func AuditAdapter() *cliadapter.AuditAdapter {
	once.Do(initServices)
	return cliadapter.NewAuditAdapter(auditService, os.Stdout)
}
