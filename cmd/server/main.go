package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/Debasmita-Giri/blog-api/internal/auth"
	"github.com/Debasmita-Giri/blog-api/internal/config"
	"github.com/Debasmita-Giri/blog-api/internal/domain/models"
	"github.com/Debasmita-Giri/blog-api/internal/handler"
	"github.com/Debasmita-Giri/blog-api/internal/middleware"
	"github.com/Debasmita-Giri/blog-api/internal/repository/postgres"
	"github.com/Debasmita-Giri/blog-api/internal/service"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	var logOut io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.OpenLogFile(cfg.LogDir, cfg.MaxLogFiles)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Token authority signs login tokens and verifies incoming ones.
	authority, err := auth.NewJWTAuthority(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to create token authority: %v", err)
	}

	// Optionally accept tokens from an external identity provider.
	var verifier auth.TokenVerifier = authority
	if cfg.AuthJWKSURL != "" {
		jwksVerifier, err := auth.NewJWKSVerifier(cfg.AuthJWKSURL, logger)
		if err != nil {
			log.Fatalf("Failed to create JWKS verifier: %v", err)
		}
		verifier = auth.ChainVerifier{authority, jwksVerifier}
	}

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	tables := postgres.NewTableNames(cfg.TablePrefix)

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	postRepo := postgres.NewPostRepository(repoConfig)
	commentRepo := postgres.NewCommentRepository(repoConfig)
	categoryRepo := postgres.NewCategoryRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	userService := service.NewUserService(userRepo, authority, logger)
	postService := service.NewPostService(postRepo, txManager, logger)
	commentService := service.NewCommentService(commentRepo, postRepo, txManager, logger)
	categoryService := service.NewCategoryService(categoryRepo, txManager, logger)

	userHandler := handler.NewUserHandler(userService, logger)
	postHandler := handler.NewPostHandler(postService, logger)
	commentHandler := handler.NewCommentHandler(commentService, logger)
	categoryHandler := handler.NewCategoryHandler(categoryService, logger)

	logger.Info("services initialized")

	authenticate := middleware.Authenticate(verifier)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)
	anyRole := middleware.RequireRoles(models.RoleAdmin, models.RoleUser)

	protected := func(h http.HandlerFunc) http.Handler { return authenticate(anyRole(h)) }
	adminGated := func(h http.HandlerFunc) http.Handler { return authenticate(adminOnly(h)) }

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// User routes
	mux.HandleFunc("POST /api/user", userHandler.CreateUser)
	mux.HandleFunc("POST /api/user/login", userHandler.Login)
	mux.Handle("GET /api/user", protected(userHandler.ListUsers))
	mux.Handle("GET /api/user/{id}", protected(userHandler.GetUser))
	mux.Handle("PUT /api/user/{id}", protected(userHandler.UpdateUser))
	mux.Handle("DELETE /api/user/{id}", adminGated(userHandler.DeleteUser))

	// Post routes
	mux.Handle("POST /api/post", protected(postHandler.CreatePost))
	mux.HandleFunc("GET /api/post", postHandler.ListPosts)
	mux.HandleFunc("GET /api/post/category/{id}", postHandler.ListPostsByCategory)
	mux.HandleFunc("GET /api/post/{id}", postHandler.GetPost)
	mux.Handle("PUT /api/post/{id}", protected(postHandler.UpdatePost))
	mux.Handle("DELETE /api/post/{id}", protected(postHandler.DeletePost))

	// Comment routes
	mux.Handle("POST /api/comment", protected(commentHandler.CreateComment))
	mux.Handle("GET /api/comment/post/{id}", protected(commentHandler.ListCommentsByPost))
	mux.Handle("GET /api/comment/{id}", protected(commentHandler.GetComment))
	mux.Handle("PUT /api/comment/{id}", protected(commentHandler.UpdateComment))
	mux.Handle("DELETE /api/comment/{id}", protected(commentHandler.DeleteComment))

	// Category routes (mutations are admin only)
	mux.HandleFunc("GET /api/category", categoryHandler.ListCategories)
	mux.HandleFunc("GET /api/category/{id}", categoryHandler.GetCategory)
	mux.Handle("POST /api/category", adminGated(categoryHandler.CreateCategories))
	mux.Handle("PUT /api/category/{id}", adminGated(categoryHandler.UpdateCategory))
	mux.Handle("DELETE /api/category/{id}", adminGated(categoryHandler.DeleteCategory))

	// Build middleware chain; CORS is outermost to handle OPTIONS pre-flight.
	var root http.Handler = mux
	root = middleware.Recovery(logger)(root)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
