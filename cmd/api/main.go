package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/tonygradient/tony-board/internal/adapter/db"
	httpadapter "github.com/tonygradient/tony-board/internal/adapter/http"
	"github.com/tonygradient/tony-board/internal/adapter/http/handlers"
	httpmiddleware "github.com/tonygradient/tony-board/internal/adapter/http/middleware"
	"github.com/tonygradient/tony-board/internal/app/service"
	"github.com/tonygradient/tony-board/internal/config"
	"github.com/tonygradient/tony-board/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	// Schema setup is an explicit startup step, before any request is served.
	if err := dbadapter.EnsureSchema(db); err != nil {
		logger.Fatal("failed to apply schema", zap.Error(err))
	}

	taskRepository := dbadapter.NewTaskRepository(db)
	commentRepository := dbadapter.NewCommentRepository(db)
	seenRepository := dbadapter.NewSeenRepository(db)
	activityRepository := dbadapter.NewActivityRepository(db)

	taskService := service.NewTaskService(taskRepository, activityRepository)
	commentService := service.NewCommentService(commentRepository, taskRepository, activityRepository, cfg.AllowedAuthors)
	seenService := service.NewSeenService(seenRepository)
	activityService := service.NewActivityService(activityRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("failed to set trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(r, cfg, httpadapter.Handlers{
		Health:   handlers.NewHealthHandler(db),
		Task:     handlers.NewTaskHandler(taskService, cfg.DefaultUserID),
		Comment:  handlers.NewCommentHandler(commentService),
		Seen:     handlers.NewSeenHandler(seenService, cfg.DefaultUserID),
		Activity: handlers.NewActivityHandler(activityService),
	})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
