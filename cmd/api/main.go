package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Repuestos-api/internal/application/auth"
	"github.com/jhoicas/Repuestos-api/internal/application/inventory"
	"github.com/jhoicas/Repuestos-api/internal/application/usecase"
	"github.com/jhoicas/Repuestos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Repuestos-api/internal/interfaces/http"
	"github.com/jhoicas/Repuestos-api/pkg/config"
	"github.com/jhoicas/Repuestos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	repuestoRepo := postgres.NewRepuestoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	movRepo := postgres.NewMovimientoRepository(pool)
	alertaRepo := postgres.NewAlertaRepository(pool)
	userRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner, inventory.NewAlertEvaluator())
	movementQueryUC := inventory.NewMovementQueryUseCase(movRepo, repuestoRepo)
	alertLifecycleUC := inventory.NewAlertLifecycleUseCase(alertaRepo)
	repuestoUC := usecase.NewRepuestoUseCase(repuestoRepo, categoriaRepo, movRepo, alertaRepo, txRunner)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	usuarioUC := usecase.NewUsuarioUseCase(userRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		RepuestoUC:       repuestoUC,
		CategoriaUC:      categoriaUC,
		UsuarioUC:        usuarioUC,
		RegisterMovement: registerMovementUC,
		MovementQuery:    movementQueryUC,
		AlertLifecycle:   alertLifecycleUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
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

	log.Info().Msg("aplicación detenida")
}
