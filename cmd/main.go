package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	advanceStepHandler "github.com/m04kA/SMC-BookingWizard/internal/api/handlers/advance_step"
	checkDateHandler "github.com/m04kA/SMC-BookingWizard/internal/api/handlers/check_date"
	confirmBookingHandler "github.com/m04kA/SMC-BookingWizard/internal/api/handlers/confirm_booking"
	createWizardHandler "github.com/m04kA/SMC-BookingWizard/internal/api/handlers/create_wizard"
	deleteWizardHandler "github.com/m04kA/SMC-BookingWizard/internal/api/handlers/delete_wizard"
	getWizardHandler "github.com/m04kA/SMC-BookingWizard/internal/api/handlers/get_wizard"
	goBackHandler "github.com/m04kA/SMC-BookingWizard/internal/api/handlers/go_back"
	listServicesHandler "github.com/m04kA/SMC-BookingWizard/internal/api/handlers/list_services"
	listTimeSlotsHandler "github.com/m04kA/SMC-BookingWizard/internal/api/handlers/list_time_slots"
	resetWizardHandler "github.com/m04kA/SMC-BookingWizard/internal/api/handlers/reset_wizard"
	selectDateHandler "github.com/m04kA/SMC-BookingWizard/internal/api/handlers/select_date"
	selectServiceHandler "github.com/m04kA/SMC-BookingWizard/internal/api/handlers/select_service"
	selectTimeSlotHandler "github.com/m04kA/SMC-BookingWizard/internal/api/handlers/select_time_slot"
	submitCustomerHandler "github.com/m04kA/SMC-BookingWizard/internal/api/handlers/submit_customer"
	validateFieldHandler "github.com/m04kA/SMC-BookingWizard/internal/api/handlers/validate_field"
	"github.com/m04kA/SMC-BookingWizard/internal/api/middleware"
	"github.com/m04kA/SMC-BookingWizard/internal/config"
	wizardRepo "github.com/m04kA/SMC-BookingWizard/internal/infra/storage/wizard"
	bookingAPIClient "github.com/m04kA/SMC-BookingWizard/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-BookingWizard/internal/integrations/simulated"
	catalogService "github.com/m04kA/SMC-BookingWizard/internal/service/catalog"
	wizardsService "github.com/m04kA/SMC-BookingWizard/internal/service/wizards"
	confirmBookingUC "github.com/m04kA/SMC-BookingWizard/internal/usecase/confirm_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-BookingWizard/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BookingWizard/internal/wizard"
	"github.com/m04kA/SMC-BookingWizard/pkg/logger"
	"github.com/m04kA/SMC-BookingWizard/pkg/metrics"
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

	log.Info("Starting SMC-BookingWizard...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Каталог услуг, слотов и календарь
	location, _ := cfg.Calendar.Location()
	closedDay, _ := cfg.Calendar.Weekday()
	timeSlots, _ := cfg.Catalog.Slots()

	catalog, err := catalogService.NewService(catalogService.Options{
		Services:  cfg.Catalog.DomainServices(),
		TimeSlots: timeSlots,
		ClosedDay: closedDay,
		Location:  location,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize catalog: %v", err)
	}

	// Внешний сервис бронирований
	var submitter wizard.Submitter
	switch cfg.Submission.Mode {
	case config.SubmissionModeHTTP:
		submitter = bookingAPIClient.NewClient(
			cfg.Submission.URL,
			time.Duration(cfg.Submission.Timeout)*time.Second,
			log,
		)
		log.Info("Submission via booking API (url=%s, timeout=%ds)", cfg.Submission.URL, cfg.Submission.Timeout)
	default:
		submitter = simulated.NewSubmitter(cfg.Submission.Delay(), log)
		log.Info("Submission simulated (delay=%s)", cfg.Submission.Delay())
	}

	// Хранилище сессий мастера
	wizardRepository := wizardRepo.NewRepository(cfg.Wizard.MaxSessions)

	// Инициализируем сервисы
	wizardSvc := wizardsService.NewService(
		wizardRepository,
		catalog,
		submitter,
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	confirmBookingUseCase := confirmBookingUC.NewUseCase(wizardRepository, metricsCollector, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(catalog, log)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(catalog, log)
	listTimeSlots := listTimeSlotsHandler.NewHandler(getAvailableSlotsUseCase, catalog, log)
	checkDate := checkDateHandler.NewHandler(catalog, log)
	createWizard := createWizardHandler.NewHandler(wizardSvc, log)
	getWizard := getWizardHandler.NewHandler(wizardSvc, log)
	selectDate := selectDateHandler.NewHandler(wizardSvc, log)
	selectTimeSlot := selectTimeSlotHandler.NewHandler(wizardSvc, log)
	selectService := selectServiceHandler.NewHandler(wizardSvc, log)
	advanceStep := advanceStepHandler.NewHandler(wizardSvc, log)
	goBack := goBackHandler.NewHandler(wizardSvc, log)
	validateField := validateFieldHandler.NewHandler(wizardSvc, log)
	submitCustomer := submitCustomerHandler.NewHandler(wizardSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	resetWizard := resetWizardHandler.NewHandler(wizardSvc, log)
	deleteWizard := deleteWizardHandler.NewHandler(wizardSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.LoggingMiddleware(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталоги и календарь ---
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/time-slots", listTimeSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/selectable", checkDate.Handle).Methods(http.MethodGet)

	// --- Мастер бронирования ---
	api.HandleFunc("/wizards", createWizard.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizards/{wizardId}", getWizard.Handle).Methods(http.MethodGet)
	api.HandleFunc("/wizards/{wizardId}", deleteWizard.Handle).Methods(http.MethodDelete)

	// Выбор данных (без автоматического перехода на следующий шаг)
	api.HandleFunc("/wizards/{wizardId}/date", selectDate.Handle).Methods(http.MethodPut)
	api.HandleFunc("/wizards/{wizardId}/time-slot", selectTimeSlot.Handle).Methods(http.MethodPut)
	api.HandleFunc("/wizards/{wizardId}/service", selectService.Handle).Methods(http.MethodPut)

	// Навигация по шагам
	api.HandleFunc("/wizards/{wizardId}/step", advanceStep.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizards/{wizardId}/back", goBack.Handle).Methods(http.MethodPost)

	// Данные клиента
	api.HandleFunc("/wizards/{wizardId}/customer/validate", validateField.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizards/{wizardId}/customer", submitCustomer.Handle).Methods(http.MethodPost)

	// Подтверждение и сброс
	api.HandleFunc("/wizards/{wizardId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizards/{wizardId}/reset", resetWizard.Handle).Methods(http.MethodPost)

	// Очистка простаивающих сессий (аналог перезагрузки страницы)
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	janitorDone := make(chan struct{})
	go func() {
		defer close(janitorDone)
		runJanitor(janitorCtx, wizardSvc, cfg.Wizard, log)
	}()

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

	stopJanitor()
	<-janitorDone

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// runJanitor периодически удаляет сессии мастера, к которым долго не обращались
func runJanitor(ctx context.Context, svc *wizardsService.Service, cfg config.WizardConfig, log *logger.Logger) {
	idleTimeout := time.Duration(cfg.IdleTimeout) * time.Second
	ticker := time.NewTicker(time.Duration(cfg.CleanupInterval) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := svc.CleanupIdle(ctx, idleTimeout); err != nil && ctx.Err() == nil {
				log.Error("Janitor: cleanup failed: %v", err)
			}
		}
	}
}
