package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/Debasmita-Giri/blog-api/internal/auth"
	"github.com/Debasmita-Giri/blog-api/internal/config"
	"github.com/Debasmita-Giri/blog-api/internal/domain/services"
	"github.com/Debasmita-Giri/blog-api/internal/repository/postgres"
	"github.com/Debasmita-Giri/blog-api/internal/seed"
	"github.com/Debasmita-Giri/blog-api/internal/service"
)

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't insert fixture data")
	clearData := flag.Bool("clear-data", false, "Delete all rows (keep schema)")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && (*dropTables || *clearData) {
		log.Fatalf("🚫 BLOCKED: Cannot run destructive operations (--drop-tables or --clear-data) in production environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		log.Println("🗑️  Dropping all tables...")
		if err := dropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("✅ Tables dropped")
	}

	log.Println("📋 Ensuring database schema is up to date...")
	if err := runSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("✅ Schema ready")

	if *schemaOnly {
		log.Println("✅ Schema setup complete (schema-only mode)")
		return
	}

	if *clearData {
		log.Println("🧹 Clearing existing data...")
		if err := clearAllData(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
		log.Println("✅ Data cleared successfully")
		return
	}

	data, err := seed.Load()
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

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

	authority, err := auth.NewJWTAuthority(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to create token authority: %v", err)
	}

	userService := service.NewUserService(userRepo, authority, logger)
	postService := service.NewPostService(postRepo, txManager, logger)
	commentService := service.NewCommentService(commentRepo, postRepo, txManager, logger)
	categoryService := service.NewCategoryService(categoryRepo, txManager, logger)

	log.Println("🌱 Seeding users...")
	userIDs := make(map[string]string, len(data.Users))
	for _, u := range data.Users {
		user, err := userService.CreateUser(ctx, &services.CreateUserRequest{
			Username: u.Username,
			Email:    u.Email,
			Password: u.Password,
			Role:     u.Role,
		})
		if err != nil {
			log.Printf("❌ Failed to create user '%s': %v", u.Username, err)
			continue
		}
		userIDs[u.Username] = user.ID
		log.Printf("✅ Created user %s (ID: %s)", user.Username, user.ID)
	}

	log.Println("🌱 Seeding categories...")
	categoryRequests := make([]services.CreateCategoryRequest, 0, len(data.Categories))
	for _, c := range data.Categories {
		categoryRequests = append(categoryRequests, services.CreateCategoryRequest{
			Name:        c.Name,
			Description: c.Description,
		})
	}
	categoryIDs := make(map[string]int, len(data.Categories))
	created, err := categoryService.CreateCategories(ctx, categoryRequests)
	if err != nil {
		log.Printf("❌ Failed to create categories: %v", err)
	}
	for _, c := range created {
		categoryIDs[c.Name] = c.ID
		log.Printf("✅ Created category %s (ID: %d)", c.Name, c.ID)
	}

	log.Println("🌱 Seeding posts...")
	postIDs := make(map[string]string, len(data.Posts))
	for _, p := range data.Posts {
		authorID, ok := userIDs[p.Author]
		if !ok {
			log.Printf("❌ Skipping post '%s': unknown author '%s'", p.Title, p.Author)
			continue
		}
		req := &services.CreatePostRequest{
			Title:   p.Title,
			Content: p.Content,
			Status:  p.Status,
		}
		if p.Category != "" {
			categoryID, ok := categoryIDs[p.Category]
			if !ok {
				log.Printf("❌ Skipping post '%s': unknown category '%s'", p.Title, p.Category)
				continue
			}
			req.CategoryID = &categoryID
		}
		post, err := postService.CreatePost(ctx, authorID, req)
		if err != nil {
			log.Printf("❌ Failed to create post '%s': %v", p.Title, err)
			continue
		}
		postIDs[p.Title] = post.ID
		log.Printf("✅ Created post %s (ID: %s)", post.Title, post.ID)
	}

	log.Println("🌱 Seeding comments...")
	for _, c := range data.Comments {
		authorID, ok := userIDs[c.Author]
		if !ok {
			log.Printf("❌ Skipping comment on '%s': unknown author '%s'", c.Post, c.Author)
			continue
		}
		postID, ok := postIDs[c.Post]
		if !ok {
			log.Printf("❌ Skipping comment: unknown post '%s'", c.Post)
			continue
		}
		comment, err := commentService.CreateComment(ctx, authorID, &services.CreateCommentRequest{
			PostID:  postID,
			Content: c.Content,
		})
		if err != nil {
			log.Printf("❌ Failed to create comment on '%s': %v", c.Post, err)
			continue
		}
		log.Printf("✅ Created comment %s on post %s", comment.ID, c.Post)
	}

	log.Println("🎉 Seeding complete!")
}

// runSchema creates tables if they don't exist
func runSchema(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames, tablePrefix string) error {
	createUsers := `
		CREATE TABLE IF NOT EXISTS ` + tables.Users + ` (
			user_id UUID PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createUsers); err != nil {
		return err
	}

	createCategories := `
		CREATE TABLE IF NOT EXISTS ` + tables.Categories + ` (
			category_id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL
		)
	`
	if _, err := pool.Exec(ctx, createCategories); err != nil {
		return err
	}

	createPosts := `
		CREATE TABLE IF NOT EXISTS ` + tables.Posts + ` (
			post_id UUID PRIMARY KEY,
			author_id UUID NOT NULL REFERENCES ` + tables.Users + `(user_id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'draft',
			category_id INTEGER REFERENCES ` + tables.Categories + `(category_id) ON DELETE SET NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createPosts); err != nil {
		return err
	}

	createComments := `
		CREATE TABLE IF NOT EXISTS ` + tables.Comments + ` (
			comment_id UUID PRIMARY KEY,
			post_id UUID NOT NULL REFERENCES ` + tables.Posts + `(post_id) ON DELETE CASCADE,
			author_id UUID NOT NULL REFERENCES ` + tables.Users + `(user_id) ON DELETE CASCADE,
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createComments); err != nil {
		return err
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `posts_author_id ON ` + tables.Posts + `(author_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `posts_category_id ON ` + tables.Posts + `(category_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `comments_post_id ON ` + tables.Comments + `(post_id)`,
	}

	for _, indexSQL := range indexes {
		if _, err := pool.Exec(ctx, indexSQL); err != nil {
			return err
		}
	}

	return nil
}

// dropAllTables drops all tables in reverse order (to respect foreign keys)
func dropAllTables(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	tableNames := []string{
		tables.Comments,
		tables.Posts,
		tables.Categories,
		tables.Users,
	}

	for _, table := range tableNames {
		dropSQL := "DROP TABLE IF EXISTS " + table + " CASCADE"
		if _, err := pool.Exec(ctx, dropSQL); err != nil {
			return err
		}
		log.Printf("  ✓ Dropped %s", table)
	}

	return nil
}

// clearAllData deletes all rows; comments and posts go first so the
// foreign keys never block the deletes.
func clearAllData(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	tableNames := []string{
		tables.Comments,
		tables.Posts,
		tables.Categories,
		tables.Users,
	}

	for _, table := range tableNames {
		if _, err := pool.Exec(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}

	return nil
}
