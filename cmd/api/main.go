package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ScriptedSpythoN/demoos/internal/config"
	appHTTP "github.com/ScriptedSpythoN/demoos/internal/handler/http"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/cron"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/database"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/email"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/jwt"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/oauth"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/ocr"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/storage"
	"github.com/ScriptedSpythoN/demoos/internal/repository/postgresql"
	announcementService "github.com/ScriptedSpythoN/demoos/internal/service/announcement"
	attendanceService "github.com/ScriptedSpythoN/demoos/internal/service/attendance"
	authService "github.com/ScriptedSpythoN/demoos/internal/service/auth"
	classroomService "github.com/ScriptedSpythoN/demoos/internal/service/classroom"
	medicalService "github.com/ScriptedSpythoN/demoos/internal/service/medical"
	studentService "github.com/ScriptedSpythoN/demoos/internal/service/student"
	subjectService "github.com/ScriptedSpythoN/demoos/internal/service/subject"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "demoos"),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Pool.Close()

	userRepo := postgresql.NewUserRepository(db)
	studentRepo := postgresql.NewStudentRepository(db)
	subjectRepo := postgresql.NewSubjectRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	auditLogRepo := postgresql.NewAuditLogRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	medicalRequestRepo := postgresql.NewMedicalRequestRepository(db)
	medicalJobRepo := postgresql.NewMedicalJobRepository(db)
	classroomRepo := postgresql.NewClassroomRepository(db)
	classroomContentRepo := postgresql.NewClassroomContentRepository(db)
	classroomExamRepo := postgresql.NewClassroomExamRepository(db)
	announcementGroupRepo := postgresql.NewAnnouncementGroupRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var googleSvc oauth.GoogleService
	if cfg.GoogleOAuthEnabled() {
		googleSvc = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	var emailSvc email.EmailService
	if cfg.SMTPEnabled() {
		emailSvc, err = email.NewEmailService(cfg.SMTP)
		if err != nil {
			log.Fatal("Failed to initialize email service:", err)
		}
	}

	attendanceSvc := attendanceService.NewService(attendanceRepo, auditLogRepo, scheduleRepo, studentRepo, logger)

	extractor := documentExtractor(cfg.OCR.Language, fileStorage, logger)
	processor := medicalService.NewProcessor(
		medicalRequestRepo,
		medicalJobRepo,
		attendanceSvc,
		extractor,
		postgresql.TxRunner(db),
		logger,
	)
	worker := medicalService.NewWorker(processor, logger)
	medicalSvc := medicalService.NewService(medicalRequestRepo, medicalJobRepo, studentRepo, userRepo, worker, emailSvc, logger)

	authSvc := authService.NewService(userRepo, jwtSvc, googleSvc, logger)
	studentSvc := studentService.NewService(studentRepo, logger)
	subjectSvc := subjectService.NewService(subjectRepo, logger)
	classroomSvc := classroomService.NewService(classroomRepo, classroomContentRepo, classroomExamRepo, logger)
	announcementSvc := announcementService.NewService(announcementGroupRepo, announcementRepo, logger)

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	worker.Start(workerCtx, cfg.OCR.Workers)

	scheduler := cron.NewScheduler()
	worker.RegisterSweep(scheduler, cfg.OCR.SweepInterval)
	scheduler.Start()

	router := appHTTP.NewRouter(jwtSvc, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, jwtSvc),
		Student:      appHTTP.NewStudentHandler(studentSvc),
		Subject:      appHTTP.NewSubjectHandler(subjectSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Medical:      appHTTP.NewMedicalHandler(medicalSvc, fileStorage),
		Classroom:    appHTTP.NewClassroomHandler(classroomSvc),
		Announcement: appHTTP.NewAnnouncementHandler(announcementSvc),
	}, cfg.App.Env)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: addr, Handler: router}

	go func() {
		logger.Info("server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	// Stop accepting requests before the queue closes so in-flight
	// reviews can still enqueue.
	if err := server.Shutdown(context.Background()); err != nil {
		logger.Error("shutdown error", slog.String("error", err.Error()))
	}
	scheduler.Stop()
	worker.Stop()
	stopWorkers()
}

// documentExtractor wraps the Tesseract extractor so it receives
// filesystem paths resolved through the storage layer.
func documentExtractor(language string, fs storage.FileStorage, logger *slog.Logger) ocr.Extractor {
	tesseract := ocr.NewTesseractExtractor(language, logger)
	return storagePathExtractor{fs: fs, inner: tesseract}
}

type storagePathExtractor struct {
	fs    storage.FileStorage
	inner ocr.Extractor
}

func (e storagePathExtractor) Extract(ctx context.Context, documentPath string) ocr.Result {
	return e.inner.Extract(ctx, e.fs.AbsolutePath(documentPath))
}
