package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/Nour60555/Graduation-Project-KDD/config"
	adminControllers "github.com/Nour60555/Graduation-Project-KDD/internal/admin/controllers"
	adminServices "github.com/Nour60555/Graduation-Project-KDD/internal/admin/services"
	"github.com/Nour60555/Graduation-Project-KDD/internal/common/middlewares"
	contentControllers "github.com/Nour60555/Graduation-Project-KDD/internal/content/controllers"
	contentServices "github.com/Nour60555/Graduation-Project-KDD/internal/content/services"
	donationControllers "github.com/Nour60555/Graduation-Project-KDD/internal/donation/controllers"
	donationServices "github.com/Nour60555/Graduation-Project-KDD/internal/donation/services"
	"github.com/Nour60555/Graduation-Project-KDD/internal/routes"
	symptomControllers "github.com/Nour60555/Graduation-Project-KDD/internal/symptom/controllers"
	symptomServices "github.com/Nour60555/Graduation-Project-KDD/internal/symptom/services"
	"github.com/Nour60555/Graduation-Project-KDD/pkg/storage/mariadb"
	"github.com/Nour60555/Graduation-Project-KDD/pkg/utils"
	"github.com/Nour60555/Graduation-Project-KDD/ws"
)

func main() {
	cfg := config.LoadConfig()
	utils.SetupLogger(cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Hub live feed
	hub := ws.NewHub()
	go hub.Run(ctx)

	// Database opsional: tanpa DB_HOST riwayat dan donasi tidak disimpan.
	var (
		history     symptomServices.HistoryRecorder
		store       donationServices.DonationStore
		predictions adminControllers.PredictionLister
		donations   adminControllers.DonationLister
	)
	if cfg.DatabaseEnabled() {
		db, err := mariadb.Connect(ctx, cfg)
		if err != nil {
			log.Fatalf("Gagal koneksi database: %v", err)
		}
		defer db.Close()
		if err := mariadb.Migrate(ctx, db); err != nil {
			log.Fatalf("Gagal migrasi database: %v", err)
		}

		historyService := symptomServices.NewHistoryService(db)
		donationRepo := donationServices.NewDonationRepository(db)
		history, predictions = historyService, historyService
		store, donations = donationRepo, donationRepo
	} else {
		log.Warn("DB_HOST is empty, prediction history and donations will not be persisted")
	}

	// Inisialisasi service
	predictor := symptomServices.NewHTTPPredictor(cfg.PredictURL, cfg.PredictTimeout)
	symptomService := symptomServices.NewSymptomService(predictor, cfg.PredictTimeout, cfg.SessionTTL, history, hub)
	donationService := donationServices.NewDonationService(donationServices.NewStaticOTP(cfg.DonationOTPCode), store, hub, cfg.DonationPendingTTL)
	adminService := adminServices.NewAdminService(cfg.AdminUsername, cfg.AdminPasswordHash, cfg.JWTSecret)
	contentService, err := contentServices.NewContentService()
	if err != nil {
		log.Fatalf("Gagal memuat konten: %v", err)
	}
	if !adminService.Enabled() {
		log.Warn("admin login disabled: ADMIN_PASSWORD_HASH or JWT_SECRET_KEY is empty")
	}

	go symptomService.Sessions.Run(ctx, time.Minute)
	go donationService.Run(ctx, time.Minute)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middlewares.RequestLogger())

	routes.Init(e, routes.Controllers{
		Symptom:  symptomControllers.NewSymptomController(symptomService),
		Donation: donationControllers.NewDonationController(donationService),
		Content:  contentControllers.NewContentController(contentService),
		Admin:    adminControllers.NewAdminController(adminService, predictions, donations),
		Hub:      hub,
	}, cfg.JWTSecret)

	go func() {
		log.Infof("Server berjalan pada port %s...", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
