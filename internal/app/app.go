package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	gqlhandler "github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/playground"

	mongoadapter "github.com/lumohq/lumo-backend/internal/adapter/mongo"
	"github.com/lumohq/lumo-backend/internal/adapter/mongo/content"
	"github.com/lumohq/lumo-backend/internal/adapter/mongo/institution"
	"github.com/lumohq/lumo-backend/internal/adapter/mongo/interaction"
	"github.com/lumohq/lumo-backend/internal/adapter/mongo/membership"
	"github.com/lumohq/lumo-backend/internal/adapter/mongo/performance"
	"github.com/lumohq/lumo-backend/internal/adapter/mongo/user"
	jwtauth "github.com/lumohq/lumo-backend/internal/auth"
	"github.com/lumohq/lumo-backend/internal/config"
	analyticssvc "github.com/lumohq/lumo-backend/internal/service/analytics"
	authsvc "github.com/lumohq/lumo-backend/internal/service/auth"
	contentsvc "github.com/lumohq/lumo-backend/internal/service/content"
	dashboardsvc "github.com/lumohq/lumo-backend/internal/service/dashboard"
	membersvc "github.com/lumohq/lumo-backend/internal/service/member"
	settingssvc "github.com/lumohq/lumo-backend/internal/service/settings"
	usersvc "github.com/lumohq/lumo-backend/internal/service/user"
	gqlpkg "github.com/lumohq/lumo-backend/internal/transport/graphql"
	"github.com/lumohq/lumo-backend/internal/transport/graphql/dataloader"
	"github.com/lumohq/lumo-backend/internal/transport/graphql/generated"
	"github.com/lumohq/lumo-backend/internal/transport/graphql/resolver"
	"github.com/lumohq/lumo-backend/internal/transport/middleware"
	"github.com/lumohq/lumo-backend/internal/transport/rest"
)

const loginRateLimitPerMinute = 10

// Run is the application entry point. It loads configuration, connects to
// MongoDB, wires repositories into services and services into the GraphQL
// and REST transports, then serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	// 1. MongoDB.
	client, db, err := mongoadapter.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Error("disconnect mongodb", slog.String("error", err.Error()))
		}
	}()

	if err := mongoadapter.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	// 2. Repositories.
	userRepo := user.New(db)
	institutionRepo := institution.New(db)
	membershipRepo := membership.New(db)
	contentRepo := content.New(db)
	performanceRepo := performance.New(db)
	interactionRepo := interaction.New(db)

	// 3. Auth infrastructure.
	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)

	// 4. Services.
	authService := authsvc.NewService(logger, userRepo, institutionRepo, jwtManager, cfg.Auth)
	userService := usersvc.NewService(logger, userRepo)
	dashboardService := dashboardsvc.NewService(logger, membershipRepo, contentRepo, performanceRepo, interactionRepo)
	contentService := contentsvc.NewService(logger, contentRepo, membershipRepo, performanceRepo)
	memberService := membersvc.NewService(logger, membershipRepo, performanceRepo, contentRepo, interactionRepo, userRepo)
	analyticsService := analyticssvc.NewService(logger, membershipRepo, performanceRepo, contentRepo, interactionRepo)
	settingsService := settingssvc.NewService(logger, institutionRepo)

	// 5. GraphQL resolver + handler.
	res := resolver.NewResolver(
		logger, userService, dashboardService, contentService,
		memberService, analyticsService, settingsService, authService,
	)

	schema := generated.NewExecutableSchema(generated.Config{Resolvers: res})
	gqlSrv := gqlhandler.NewDefaultServer(schema)
	gqlSrv.SetErrorPresenter(gqlpkg.NewErrorPresenter(logger))
	if cfg.GraphQL.ComplexityLimit > 0 {
		gqlSrv.Use(extension.FixedComplexityLimit(cfg.GraphQL.ComplexityLimit))
	}

	dlRepos := &dataloader.Repos{
		User: userRepo,
	}

	graphqlHandler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
		middleware.Middleware(dataloader.Middleware(dlRepos)),
	)(gqlSrv)

	// 6. REST handlers.
	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	authHandler := rest.NewAuthHandler(authService, logger)
	reportHandler := rest.NewReportHandler(memberService, logger)
	healthHandler := rest.NewHealthHandler(mongoadapter.Pinger{Client: client}, BuildVersion())

	restChain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)

	loginHandler := restChain(
		rateLimiter.Limit(loginRateLimitPerMinute)(http.HandlerFunc(authHandler.Login)),
	)
	reportsHandler := restChain(
		middleware.Auth(jwtManager)(http.HandlerFunc(reportHandler.Users)),
	)

	// 7. Mux.
	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("POST /query", graphqlHandler)
	mux.Handle("OPTIONS /query", graphqlHandler)
	mux.Handle("POST /api/auth/login", loginHandler)
	mux.Handle("OPTIONS /api/auth/login", loginHandler)
	mux.Handle("GET /api/reports/users", reportsHandler)

	if cfg.GraphQL.PlaygroundEnabled {
		mux.Handle("GET /playground", playground.Handler("Lumo GraphQL", "/query"))
	}

	// 8. HTTP server with graceful shutdown.
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
