package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	billingapp "github.com/vinpos/backend/internal/application/billing"
	catalogapp "github.com/vinpos/backend/internal/application/catalog"
	financeapp "github.com/vinpos/backend/internal/application/finance"
	hrapp "github.com/vinpos/backend/internal/application/hr"
	identityapp "github.com/vinpos/backend/internal/application/identity"
	inventoryapp "github.com/vinpos/backend/internal/application/inventory"
	partnerapp "github.com/vinpos/backend/internal/application/partner"
	settingsapp "github.com/vinpos/backend/internal/application/settings"
	"github.com/vinpos/backend/internal/domain/shared"
	"github.com/vinpos/backend/internal/infrastructure/config"
	"github.com/vinpos/backend/internal/infrastructure/logger"
	"github.com/vinpos/backend/internal/infrastructure/memory"
	"github.com/vinpos/backend/internal/interfaces/http/handler"
	"github.com/vinpos/backend/internal/interfaces/http/middleware"
	"github.com/vinpos/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting VinPOS Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize the in-memory store and seed demo data
	store := memory.NewStore(shared.Settings{
		Currency:           cfg.POS.Currency,
		AllowNegativeStock: cfg.POS.AllowNegativeStock,
		ThemeColor:         cfg.POS.ThemeColor,
		BaseFontSize:       cfg.POS.BaseFontSize,
		CompanyName:        cfg.POS.CompanyName,
		CompanyTaxID:       cfg.POS.CompanyTaxID,
		CompanyPhone:       cfg.POS.CompanyPhone,
		ReceiptPrinter: shared.ReceiptPrinterConfig{
			Brand: cfg.POS.PrinterBrand,
			IP:    cfg.POS.PrinterIP,
		},
	})
	if err := memory.Seed(store); err != nil {
		log.Fatal("Failed to seed store", zap.Error(err))
	}
	log.Info("In-memory store seeded")

	// Initialize application services
	invoiceService := billingapp.NewInvoiceService(
		store.Invoices, store.Products, store.Customers, store.Suppliers,
		store.Transactions, store.Settings, log,
	)
	transferService := inventoryapp.NewTransferService(store.Transfers, store.Products, store.Settings, log)
	locationService := inventoryapp.NewLocationService(store.Locations)
	transactionService := financeapp.NewTransactionService(store.Transactions, store.Customers, store.Suppliers, log)
	financeRefService := financeapp.NewReferenceService(store.Banks, store.CashRegisters, store.ExpenseCategories, store.Accounts)
	productService := catalogapp.NewProductService(store.Products, log)
	catalogRefService := catalogapp.NewReferenceService(store.Categories, store.Brands, store.Units)
	partnerService := partnerapp.NewPartnerService(store.Customers, store.Suppliers)
	authService := identityapp.NewAuthService(store.Users, store.Roles, log)
	userService := identityapp.NewUserService(store.Users, store.Roles)
	employeeService := hrapp.NewEmployeeService(store.Employees, store.Leaves)
	settingsService := settingsapp.NewService(store.Settings)

	// Set up the HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewSystemHandler()).
		Register(handler.NewInvoiceHandler(invoiceService)).
		Register(handler.NewTransferHandler(transferService, locationService)).
		Register(handler.NewTransactionHandler(transactionService)).
		Register(handler.NewFinanceHandler(financeRefService)).
		Register(handler.NewProductHandler(productService)).
		Register(handler.NewMasterDataHandler(catalogRefService)).
		Register(handler.NewPartnerHandler(partnerService)).
		Register(handler.NewIdentityHandler(authService, userService)).
		Register(handler.NewHRHandler(employeeService)).
		Register(handler.NewSettingsHandler(settingsService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}
