package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-TyreService/internal/api/handlers"
	createAppointmentHandler "github.com/m04kA/SMC-TyreService/internal/api/handlers/create_appointment"
	createTimeSlotsHandler "github.com/m04kA/SMC-TyreService/internal/api/handlers/create_time_slots"
	deleteAppointmentHandler "github.com/m04kA/SMC-TyreService/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-TyreService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-TyreService/internal/api/handlers/get_available_slots"
	getOrderHandler "github.com/m04kA/SMC-TyreService/internal/api/handlers/get_order"
	getTimeSlotsHandler "github.com/m04kA/SMC-TyreService/internal/api/handlers/get_time_slots"
	listAppointmentsHandler "github.com/m04kA/SMC-TyreService/internal/api/handlers/list_appointments"
	omiseWebhookHandler "github.com/m04kA/SMC-TyreService/internal/api/handlers/omise_webhook"
	stageOrderHandler "github.com/m04kA/SMC-TyreService/internal/api/handlers/stage_order"
	updateAppointmentHandler "github.com/m04kA/SMC-TyreService/internal/api/handlers/update_appointment"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-TyreService/internal/api/handlers/update_appointment_status"
	updateTimeSlotsHandler "github.com/m04kA/SMC-TyreService/internal/api/handlers/update_time_slots"
	"github.com/m04kA/SMC-TyreService/internal/api/middleware"
	"github.com/m04kA/SMC-TyreService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-TyreService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-TyreService/internal/infra/storage/catalog"
	orderRepo "github.com/m04kA/SMC-TyreService/internal/infra/storage/order"
	slotConfigRepo "github.com/m04kA/SMC-TyreService/internal/infra/storage/slotconfig"
	tempOrderRepo "github.com/m04kA/SMC-TyreService/internal/infra/storage/temporder"
	"github.com/m04kA/SMC-TyreService/internal/integrations/notifier"
	"github.com/m04kA/SMC-TyreService/internal/integrations/omisegateway"
	"github.com/m04kA/SMC-TyreService/internal/integrations/smsgateway"
	stagedCleanupJob "github.com/m04kA/SMC-TyreService/internal/jobs/staged_cleanup"
	appointmentsService "github.com/m04kA/SMC-TyreService/internal/service/appointments"
	ordersService "github.com/m04kA/SMC-TyreService/internal/service/orders"
	slotConfigService "github.com/m04kA/SMC-TyreService/internal/service/slotconfig"
	bookingGuardUC "github.com/m04kA/SMC-TyreService/internal/usecase/booking_guard"
	createAppointmentUC "github.com/m04kA/SMC-TyreService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-TyreService/internal/usecase/get_available_slots"
	reconcilePaymentUC "github.com/m04kA/SMC-TyreService/internal/usecase/reconcile_payment"
	stageOrderUC "github.com/m04kA/SMC-TyreService/internal/usecase/stage_order"
	updateAppointmentUC "github.com/m04kA/SMC-TyreService/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-TyreService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TyreService/pkg/logger"
	"github.com/m04kA/SMC-TyreService/pkg/metrics"
	"github.com/m04kA/SMC-TyreService/pkg/obs"
	"github.com/m04kA/SMC-TyreService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TyreService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены).
	// nil коллектор допустим: все методы метрик его проверяют.
	var metricsCollector *metrics.Metrics
	registry := prometheus.NewRegistry()
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, registry)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Трассировка
	shutdownTracer := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		shutdownTracer, err = obs.InitTracer(context.Background(), cfg.Metrics.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.Environment)
		if err != nil {
			log.Fatal("Failed to initialize tracer: %v", err)
		}
		log.Info("Tracing enabled (endpoint=%s, env=%s)", cfg.Tracing.Endpoint, cfg.Tracing.Environment)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB,
		txmanager.WithMaxRetries(cfg.Webhook.MaxRetries),
		txmanager.WithBackoff(time.Duration(cfg.Webhook.RetryBackoffMs)*time.Millisecond),
	)

	// Инициализируем интеграционных клиентов
	omiseClient, err := omisegateway.NewClient(cfg.Omise.PublicKey, cfg.Omise.SecretKey, log)
	if err != nil {
		log.Fatal("Failed to initialize Omise client: %v", err)
	}

	var publisher notifier.Publisher
	var rabbit *notifier.RabbitPublisher
	if cfg.RabbitMQ.Enabled {
		rabbit, err = notifier.NewRabbitPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		publisher = rabbit
		log.Info("Email notifications are published to exchange %q", cfg.RabbitMQ.Exchange)
	} else {
		log.Warn("RabbitMQ disabled, emails will only be logged")
	}
	emailNotifier := notifier.NewNotifier(publisher, log)

	var smsSender reconcilePaymentUC.SMSSender
	if cfg.Twilio.Enabled {
		smsSender = smsgateway.NewClient(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber, log)
		log.Info("SMS notifications enabled (from=%s)", cfg.Twilio.FromNumber)
	}

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	slotConfigRepository := slotConfigRepo.NewRepository(wrappedDB)
	orderRepository := orderRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	tempOrderRepository := tempOrderRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	guard := bookingGuardUC.NewGuard(appointmentRepository, slotConfigRepository, log)
	slotConfigSvc := slotConfigService.NewService(slotConfigRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, orderRepository, txMgr, log)
	ordersSvc := ordersService.NewService(orderRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(appointmentRepository, guard, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(appointmentRepository, guard, txMgr, metricsCollector, log)
	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(appointmentRepository, guard, txMgr, metricsCollector, log)
	stageOrderUseCase := stageOrderUC.NewUseCase(tempOrderRepository, guard, cfg.Checkout.TTL(), log)
	reconcilePaymentUseCase := reconcilePaymentUC.NewUseCase(
		reconcilePaymentUC.Dependencies{
			Orders:       orderRepository,
			Appointments: appointmentRepository,
			Confirmer:    appointmentsSvc,
			Catalog:      catalogRepository,
			StagedOrders: tempOrderRepository,
			Resolver:     guard,
			TxManager:    txMgr,
			Notifier:     emailNotifier,
			SMS:          smsSender,
			Metrics:      metricsCollector,
		},
		reconcilePaymentUC.Settings{
			ProcessingTimeout:    time.Duration(cfg.Webhook.ProcessingTimeout) * time.Second,
			NotifyTimeout:        time.Duration(cfg.Notifications.SendTimeout) * time.Second,
			ShopName:             cfg.Notifications.ShopName,
			AdminEmail:           cfg.Notifications.AdminEmail,
			DefaultTaxName:       cfg.Tax.DefaultName,
			DefaultTaxPercentage: cfg.Tax.Percentage(),
		},
		log,
	)

	// Фоновая очистка просроченных черновиков заказов
	cleanupJob := stagedCleanupJob.NewJob(tempOrderRepository, metricsCollector, log)
	if err := cleanupJob.Start(cfg.Checkout.CleanupSchedule); err != nil {
		log.Fatal("Failed to start staged order cleanup: %v", err)
	}

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(slotConfigSvc, log)
	createTimeSlots := createTimeSlotsHandler.NewHandler(slotConfigSvc, log)
	updateTimeSlots := updateTimeSlotsHandler.NewHandler(slotConfigSvc, log)
	stageOrder := stageOrderHandler.NewHandler(stageOrderUseCase, log)
	getOrder := getOrderHandler.NewHandler(ordersSvc, log)
	omiseWebhook := omiseWebhookHandler.NewHandler(omiseClient, reconcilePaymentUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health checks
	r.HandleFunc("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.HandleFunc("/health/ready", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()
		if err := wrappedDB.PingContext(ctx); err != nil {
			log.Warn("GET /health/ready - Database unavailable: %v", err)
			handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Активная конфигурация слотов
	api.HandleFunc("/time-slots", getTimeSlots.Handle).Methods(http.MethodGet)

	// Доступные слоты на дату
	api.HandleFunc("/slots/available", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Запись без оплаты
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Черновик заказа перед оплатой
	api.HandleFunc("/checkout/staged-orders", stageOrder.Handle).Methods(http.MethodPost)

	// Webhook платежного провайдера (проверяется повторным чтением события у Omise)
	api.HandleFunc("/webhooks/omise", omiseWebhook.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer JWT с ролью admin)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.JWTSecret, cfg.Auth.Issuer))

	// --- Конфигурация слотов ---
	admin.HandleFunc("/time-slots", createTimeSlots.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/time-slots/{configId}", updateTimeSlots.Handle).Methods(http.MethodPut)

	// --- Записи ---
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Заказы ---
	admin.HandleFunc("/orders/{orderId}", getOrder.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	cleanupJob.Stop(shutdownCtx)

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	if rabbit != nil {
		if err := rabbit.Close(); err != nil {
			log.Warn("Failed to close RabbitMQ connection: %v", err)
		}
	}

	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Warn("Failed to flush traces: %v", err)
	}

	log.Info("Server stopped gracefully")
}
