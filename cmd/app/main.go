package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"members-admin-service/api"
	"members-admin-service/internal/config"
	"members-admin-service/internal/database"
	"members-admin-service/internal/domain"
	"members-admin-service/internal/handler"
	"members-admin-service/internal/repository"
	"members-admin-service/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	// Источник участников
	source, db, err := newMemberSource(cfg)
	if err != nil {
		logger.Fatalf("Members source init failed: %v", err)
	}
	if db != nil {
		defer db.Close()
		logger.Info("Database connected")
	}
	logger.WithFields(logrus.Fields{
		"source":    cfg.MembersSource,
		"page_size": cfg.PageSize,
	}).Info("Members source configured")

	// Use Cases
	tableUC := usecase.NewTableUseCase(source, cfg.PageSize, logger)

	// Echo + Handlers
	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = handler.JSONSerializer{}
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(handler.LoggingMiddleware(logger))

	// Handlers
	apiHandler := handler.NewAPIHandler(tableUC, logger)
	api.RegisterHandlers(e, apiHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Infof("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatalf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}

// newMemberSource выбирает источник участников по конфигурации.
// Для postgres также возвращает открытое соединение.
func newMemberSource(cfg config.Config) (domain.MemberSource, *sql.DB, error) {
	switch cfg.MembersSource {
	case config.SourcePostgres:
		db, err := database.NewPostgresDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewMemberRepository(db, database.New(db)), db, nil
	default:
		return repository.NewHTTPMemberSource(http.DefaultClient, cfg.MembersURL), nil, nil
	}
}
