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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addCurriculumEntryHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/add_curriculum_entry"
	bulkCreateBookingsHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/bulk_create_bookings"
	createBookingHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/create_booking"
	createInstructorHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/create_instructor"
	createLocationHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/create_location"
	createMaterialHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/create_material"
	createPackageHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/create_package"
	createStudentHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/create_student"
	deleteBookingHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/delete_booking"
	deleteInstructorHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/delete_instructor"
	deleteLocationHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/delete_location"
	deleteMaterialHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/delete_material"
	deletePackageHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/delete_package"
	deleteStudentHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/delete_student"
	getAttendanceHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/get_attendance"
	getBookingHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/get_bookings"
	getDashboardStatsHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/get_dashboard_stats"
	getInstructorsHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/get_instructors"
	getLocationsHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/get_locations"
	getMaterialsHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/get_materials"
	getPackageCurriculumHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/get_package_curriculum"
	getPackagesHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/get_packages"
	getStudentHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/get_student"
	getStudentProgressHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/get_student_progress"
	getStudentsHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/get_students"
	getTimelineHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/get_timeline"
	removeCurriculumEntryHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/remove_curriculum_entry"
	updateBookingHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/update_booking"
	updateBookingStatusHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/update_booking_status"
	updateStudentHandler "github.com/bimbelceria/BC-AdminService/internal/api/handlers/update_student"
	"github.com/bimbelceria/BC-AdminService/internal/api/middleware"
	"github.com/bimbelceria/BC-AdminService/internal/config"
	bookingRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/booking"
	curriculumRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/curriculum"
	instructorRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/instructor"
	locationRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/location"
	materialRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/material"
	packageRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/packages"
	studentRepo "github.com/bimbelceria/BC-AdminService/internal/infra/storage/student"
	authServiceClient "github.com/bimbelceria/BC-AdminService/internal/integrations/authservice"
	bookingsService "github.com/bimbelceria/BC-AdminService/internal/service/bookings"
	instructorsService "github.com/bimbelceria/BC-AdminService/internal/service/instructors"
	locationsService "github.com/bimbelceria/BC-AdminService/internal/service/locations"
	materialsService "github.com/bimbelceria/BC-AdminService/internal/service/materials"
	packagesService "github.com/bimbelceria/BC-AdminService/internal/service/packages"
	studentsService "github.com/bimbelceria/BC-AdminService/internal/service/students"
	getStudentProgressUC "github.com/bimbelceria/BC-AdminService/internal/usecase/get_student_progress"
	getTimelineUC "github.com/bimbelceria/BC-AdminService/internal/usecase/get_timeline"
	listBookingsUC "github.com/bimbelceria/BC-AdminService/internal/usecase/list_bookings"
	"github.com/bimbelceria/BC-AdminService/pkg/dbmetrics"
	"github.com/bimbelceria/BC-AdminService/pkg/logger"
	"github.com/bimbelceria/BC-AdminService/pkg/metrics"
	"github.com/bimbelceria/BC-AdminService/pkg/simpletxmanager"
	"github.com/bimbelceria/BC-AdminService/pkg/txmanager"
)

// systemClock feeds wall-clock time into the bookings service
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting BC-AdminService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (AuthService=%s timeout=%ds)",
		cfg.AuthService.URL, cfg.AuthService.Timeout)

	var (
		bookingRepository    *bookingRepo.Repository
		studentRepository    *studentRepo.Repository
		instructorRepository *instructorRepo.Repository
		locationRepository   *locationRepo.Repository
		materialRepository   *materialRepo.Repository
		packageRepository    *packageRepo.Repository
		curriculumRepository *curriculumRepo.Repository
	)

	var txMgr packagesService.TransactionManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		studentRepository = studentRepo.NewRepository(wrappedDB)
		instructorRepository = instructorRepo.NewRepository(wrappedDB)
		locationRepository = locationRepo.NewRepository(wrappedDB)
		materialRepository = materialRepo.NewRepository(wrappedDB)
		packageRepository = packageRepo.NewRepository(wrappedDB)
		curriculumRepository = curriculumRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		studentRepository = studentRepo.NewRepository(db)
		instructorRepository = instructorRepo.NewRepository(db)
		locationRepository = locationRepo.NewRepository(db)
		materialRepository = materialRepo.NewRepository(db)
		packageRepository = packageRepo.NewRepository(db)
		curriculumRepository = curriculumRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	studentsSvc := studentsService.NewService(
		studentRepository,
		bookingRepository,
		authClient,
		log,
	)
	instructorsSvc := instructorsService.NewService(instructorRepository, authClient, log)
	locationsSvc := locationsService.NewService(locationRepository, authClient, log)
	materialsSvc := materialsService.NewService(materialRepository, authClient, log)
	packagesSvc := packagesService.NewService(
		packageRepository,
		curriculumRepository,
		materialRepository,
		txMgr,
		authClient,
		log,
	)
	bookingsSvc := bookingsService.NewService(
		bookingRepository,
		studentRepository,
		instructorRepository,
		authClient,
		systemClock{},
		log,
	)

	getTimelineUseCase := getTimelineUC.NewUseCase(
		bookingRepository,
		curriculumRepository,
		log,
	)
	getStudentProgressUseCase := getStudentProgressUC.NewUseCase(
		studentRepository,
		bookingRepository,
		curriculumRepository,
		log,
	)
	listBookingsUseCase := listBookingsUC.NewUseCase(
		bookingRepository,
		curriculumRepository,
		log,
	)

	createBooking := createBookingHandler.NewHandler(bookingsSvc, log)
	bulkCreateBookings := bulkCreateBookingsHandler.NewHandler(bookingsSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	getBookings := getBookingsHandler.NewHandler(listBookingsUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(bookingsSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingsSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingsSvc, log)
	getTimeline := getTimelineHandler.NewHandler(getTimelineUseCase, log)
	getAttendance := getAttendanceHandler.NewHandler(bookingsSvc, log)
	getDashboardStats := getDashboardStatsHandler.NewHandler(bookingsSvc, log)

	createStudent := createStudentHandler.NewHandler(studentsSvc, log)
	getStudents := getStudentsHandler.NewHandler(studentsSvc, log)
	getStudent := getStudentHandler.NewHandler(studentsSvc, log)
	updateStudent := updateStudentHandler.NewHandler(studentsSvc, log)
	deleteStudent := deleteStudentHandler.NewHandler(studentsSvc, log)
	getStudentProgress := getStudentProgressHandler.NewHandler(getStudentProgressUseCase, log)

	createInstructor := createInstructorHandler.NewHandler(instructorsSvc, log)
	getInstructors := getInstructorsHandler.NewHandler(instructorsSvc, log)
	deleteInstructor := deleteInstructorHandler.NewHandler(instructorsSvc, log)

	createLocation := createLocationHandler.NewHandler(locationsSvc, log)
	getLocations := getLocationsHandler.NewHandler(locationsSvc, log)
	deleteLocation := deleteLocationHandler.NewHandler(locationsSvc, log)

	createMaterial := createMaterialHandler.NewHandler(materialsSvc, log)
	getMaterials := getMaterialsHandler.NewHandler(materialsSvc, log)
	deleteMaterial := deleteMaterialHandler.NewHandler(materialsSvc, log)

	createPackage := createPackageHandler.NewHandler(packagesSvc, log)
	getPackages := getPackagesHandler.NewHandler(packagesSvc, log)
	getPackageCurriculum := getPackageCurriculumHandler.NewHandler(packagesSvc, log)
	addCurriculumEntry := addCurriculumEntryHandler.NewHandler(packagesSvc, log)
	removeCurriculumEntry := removeCurriculumEntryHandler.NewHandler(packagesSvc, log)
	deletePackage := deletePackageHandler.NewHandler(packagesSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (public, no authentication)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix. Every route requires the X-User-ID header set by the
	// gateway; only the metrics endpoint above stays open.
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// --- Bookings and schedule views ---
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/bulk", bulkCreateBookings.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/timeline", getTimeline.Handle).Methods(http.MethodGet)
	api.HandleFunc("/attendance", getAttendance.Handle).Methods(http.MethodGet)
	api.HandleFunc("/dashboard/stats", getDashboardStats.Handle).Methods(http.MethodGet)

	// --- Students ---
	api.HandleFunc("/students", getStudents.Handle).Methods(http.MethodGet)
	api.HandleFunc("/students", createStudent.Handle).Methods(http.MethodPost)
	api.HandleFunc("/students/{studentId}", getStudent.Handle).Methods(http.MethodGet)
	api.HandleFunc("/students/{studentId}", updateStudent.Handle).Methods(http.MethodPut)
	api.HandleFunc("/students/{studentId}", deleteStudent.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/students/{studentId}/progress", getStudentProgress.Handle).Methods(http.MethodGet)

	// --- Instructors ---
	api.HandleFunc("/instructors", getInstructors.Handle).Methods(http.MethodGet)
	api.HandleFunc("/instructors", createInstructor.Handle).Methods(http.MethodPost)
	api.HandleFunc("/instructors/{instructorId}", deleteInstructor.Handle).Methods(http.MethodDelete)

	// --- Locations ---
	api.HandleFunc("/locations", getLocations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/locations", createLocation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/locations/{locationId}", deleteLocation.Handle).Methods(http.MethodDelete)

	// --- Materials ---
	api.HandleFunc("/materials", getMaterials.Handle).Methods(http.MethodGet)
	api.HandleFunc("/materials", createMaterial.Handle).Methods(http.MethodPost)
	api.HandleFunc("/materials/{materialId}", deleteMaterial.Handle).Methods(http.MethodDelete)

	// --- Packages and curriculum ---
	api.HandleFunc("/packages", getPackages.Handle).Methods(http.MethodGet)
	api.HandleFunc("/packages", createPackage.Handle).Methods(http.MethodPost)
	api.HandleFunc("/packages/{packageId}/curriculum", getPackageCurriculum.Handle).Methods(http.MethodGet)
	api.HandleFunc("/packages/{packageId}/curriculum", addCurriculumEntry.Handle).Methods(http.MethodPost)
	api.HandleFunc("/packages/{packageId}/curriculum/{entryId}", removeCurriculumEntry.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/packages/{packageId}", deletePackage.Handle).Methods(http.MethodDelete)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
