package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"quill/internal/config"
	"quill/internal/core"
	"quill/internal/db"
	"quill/internal/http/handler"
	"quill/internal/http/handler/middleware"
	"quill/internal/http/payload"
	"quill/internal/http/server"
	"quill/internal/repository"
	"quill/internal/upload"
	"quill/pkg/jwt"
	"quill/pkg/log"
	"quill/pkg/sanitize"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const uploadsPrefix = "/uploads"

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}

	logger := log.NewZapLogger("quill", log.ParseLevel(config.LogLevel))
	defer logger.Sync()

	dbConn, err := db.NewGormDB(config.DBDriver, config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err, "driver", config.DBDriver)
		return err
	}
	defer dbConn.Close()

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewBlogRepository(dbConn)
	if err = repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// blog
	blog := core.NewBlog(
		logger,
		repo,
		jwtService,
		sanitize.NewHTMLSanitizer())

	images, err := upload.NewStore(config.UploadDir, uploadsPrefix, upload.MaxSize)
	if err != nil {
		logger.Errorw("failed to prepare upload directory", "error", err, "dir", config.UploadDir)
		return err
	}

	// handler
	blogHlr, err := handler.NewBlogHandler(
		logger,
		payload.DecodeValidator{},
		blog,
		images,
		config.CookieSecure)
	if err != nil {
		logger.Errorw("failed to load page templates", "error", err)
		return err
	}
	gate := middleware.NewAuthGate(logger, blog)

	// register routes
	mux := http.NewServeMux()
	mux.HandleFunc(handler.Home, gate.Optional(blogHlr.HandleHome))
	mux.HandleFunc(handler.Post, gate.Optional(blogHlr.HandlePost))
	mux.HandleFunc(handler.NewPost, gate.Optional(blogHlr.HandleNewPost))
	mux.HandleFunc(handler.AboutMe, gate.Optional(blogHlr.HandleAboutMe))
	mux.HandleFunc(handler.Login, gate.Optional(blogHlr.HandleLoginPage))
	mux.HandleFunc(handler.Auth, blogHlr.HandleAuthenticate)
	mux.HandleFunc(handler.Logout, blogHlr.HandleLogout)
	mux.HandleFunc(handler.Submit, gate.Required(blogHlr.HandleSubmit))
	mux.Handle("GET "+uploadsPrefix+"/", images.Handler())
	mux.Handle("GET /static/", handler.StaticHandler())
	mux.Handle("GET /metrics", promhttp.Handler())

	// middleware
	hdlr := middleware.SecureHeaders(mux)
	hdlr = middleware.NewRecoverMiddleware(logger).Recover(hdlr)
	hdlr = middleware.NewMetricsMiddleware(prometheus.DefaultRegisterer).Metrics(hdlr)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return sdErr
	}

	return err
}
