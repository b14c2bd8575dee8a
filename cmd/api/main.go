// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/hireloop/hireloop/internal/audit"
	"github.com/hireloop/hireloop/internal/auth"
	"github.com/hireloop/hireloop/internal/authz"
	"github.com/hireloop/hireloop/internal/config"
	"github.com/hireloop/hireloop/internal/email"
	"github.com/hireloop/hireloop/internal/handler"
	"github.com/hireloop/hireloop/internal/middleware"
	"github.com/hireloop/hireloop/internal/repository"
	"github.com/hireloop/hireloop/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	jobPostRepo := repository.NewJobPostRepository(db)
	auditRepo := repository.NewAuthzAuditLogRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize email service
	emailService, err := email.NewEmailService(cfg, email.Provider(cfg.EmailProvider))
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}

	// Role authority: gorm-backed by default, Permify when configured.
	var recorder audit.Recorder = audit.NoOpRecorder{}
	if cfg.AuditEnabled {
		recorder = audit.NewDBRecorder(auditRepo, logger)
	}
	authority := authz.NewAuthority(memberRepo, roleRepo, recorder)

	var checker authz.PermissionSource = authority
	var syncer authz.RelationshipSyncer
	if cfg.Permify.Host != "" {
		permifySource, err := authz.NewPermifySource(cfg.Permify.Host, authz.WithTenant(cfg.Permify.Tenant))
		if err != nil {
			return fmt.Errorf("connecting to permify: %w", err)
		}
		// Permify answers checks from relationship tuples, so membership
		// changes have to be mirrored into it.
		checker = permifySource
		syncer = permifySource
		logger.Info("using permify authorization backend", "host", cfg.Permify.Host)
	}

	// Initialize services
	invitationService := service.NewInvitationService(
		invitationRepo, memberRepo, roleRepo, userRepo, companyRepo,
		checker, emailService, cfg,
	)
	userService := service.NewUserService(userRepo, passwordHasher, tokenManager, emailService, invitationService)
	companyService := service.NewCompanyService(companyRepo, userRepo, checker)
	memberService := service.NewMemberService(memberRepo, roleRepo, checker)
	roleService := service.NewRoleService(roleRepo, memberRepo, checker)
	jobPostService := service.NewJobPostService(jobPostRepo, memberRepo, checker)
	auditLogService := service.NewAuthzAuditLogService(auditRepo, checker)

	if syncer != nil {
		companyService.SetRelationshipSyncer(syncer)
		memberService.SetRelationshipSyncer(syncer)
		invitationService.SetRelationshipSyncer(syncer)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService)
	companyHandler := handler.NewCompanyHandler(companyService)
	memberHandler := handler.NewMemberHandler(memberService)
	roleHandler := handler.NewRoleHandler(roleService)
	invitationHandler := handler.NewInvitationHandler(invitationService)
	jobPostHandler := handler.NewJobPostHandler(jobPostService)
	auditLogHandler := handler.NewAuthzAuditLogHandler(auditLogService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(audit.RequestContext)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))

			r.Post("/auth/signup", authHandler.SignupHandler)
			r.Post("/auth/login", authHandler.LoginHandler)
		})

		// Invitation resolution works with or without a session: accepts
		// from an email link before signup are parked as pre-accepted.
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Use(middleware.OptionalAuthMiddleware(tokenManager))

			r.Post("/invitations/{invitationID}/resolve", invitationHandler.ResolveInvitation)
		})

		// Public company browsing
		r.Get("/companies/by-handle/{handle}", companyHandler.GetCompanyByHandle)
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuthMiddleware(tokenManager))
			r.Get("/companies/{companyID}/job-posts", jobPostHandler.ListJobPosts)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Use(middleware.AuthMiddleware(tokenManager))

			r.Get("/companies", companyHandler.ListMyCompanies)
			r.Post("/companies", companyHandler.CreateCompany)

			r.Route("/companies/{companyID}", func(r chi.Router) {
				r.Get("/", companyHandler.GetCompany)
				r.Put("/", companyHandler.UpdateCompany)

				r.Get("/members", memberHandler.ListMembers)
				r.Put("/members/{userID}/role", memberHandler.ChangeMemberRole)
				r.Delete("/members/{userID}", memberHandler.RemoveMember)

				r.Get("/roles", roleHandler.ListRoles)
				r.Post("/roles", roleHandler.CreateRole)
				r.Put("/roles/{roleID}", roleHandler.UpdateRole)
				r.Delete("/roles/{roleID}", roleHandler.DeleteRole)

				r.Post("/invitations", invitationHandler.CreateInvitation)

				r.Post("/job-posts", jobPostHandler.CreateJobPost)

				r.Get("/audit-logs", auditLogHandler.GetAuditLogs)
			})

			r.Put("/job-posts/{postID}", jobPostHandler.UpdateJobPost)
			r.Delete("/job-posts/{postID}", jobPostHandler.DeleteJobPost)
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"error encountered"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
