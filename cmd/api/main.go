package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/wazard-api/internal/application/account"
	"github.com/jhoicas/wazard-api/internal/application/attendance"
	"github.com/jhoicas/wazard-api/internal/application/ports"
	"github.com/jhoicas/wazard-api/internal/application/usecase"
	"github.com/jhoicas/wazard-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/wazard-api/internal/infrastructure/pdf"
	"github.com/jhoicas/wazard-api/internal/infrastructure/postgres"
	"github.com/jhoicas/wazard-api/internal/infrastructure/security"
	httpRouter "github.com/jhoicas/wazard-api/internal/interfaces/http"
	"github.com/jhoicas/wazard-api/pkg/config"
	"github.com/jhoicas/wazard-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	commuteRepo := postgres.NewCommuteRecordRepository(pool)
	absentRepo := postgres.NewAbsentRepository(pool)

	clock := ports.SystemClock{}
	if !cfg.Mail.Enabled() {
		log.Warn().Msg("MAIL_HOST vacío: correos de bienvenida deshabilitados")
	}

	accountUC := account.NewAccountUseCase(accountRepo, security.NewBcryptEncoder(bcrypt.DefaultCost), account.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, account.Deps{
		Tx:       txManager,
		Notifier: mail.NewWelcomeNotifier(cfg.Mail),
		Clock:    clock,
		Logger:   log,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo, accountRepo, txManager, clock)

	// PDF: planilla diaria de asistencia
	var sheetFont *infrapdf.SheetFont
	if cfg.PDF.FontPath != "" {
		sheetFont, err = infrapdf.LoadSheetFont(cfg.PDF.FontFamily, cfg.PDF.FontPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.PDF.FontPath).Msg("fuente de la planilla")
		}
	} else {
		log.Warn().Msg("PDF_FONT_PATH vacío: la planilla usa helvetica y no dibuja Hangul")
	}
	attendanceUC := attendance.NewAttendanceUseCase(commuteRepo, absentRepo, accountRepo, companyRepo, attendance.Deps{
		Sheets: infrapdf.NewMarotoSheetGenerator(sheetFont),
		Tx:     txManager,
		Clock:  clock,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log),
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Wazard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "db_down", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AccountUC:    accountUC,
		CompanyUC:    companyUC,
		AttendanceUC: attendanceUC,
		JWTSecret:    cfg.JWT.Secret,
		Now:          clock.Now,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	accountUC.Wait()

	log.Info().Msg("aplicación detenida")
}
