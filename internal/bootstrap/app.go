package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/ai"
	"resume-tailor/internal/auth"
	"resume-tailor/internal/editor"
	"resume-tailor/internal/exports"
	"resume-tailor/internal/llm"
	sharedauth "resume-tailor/internal/shared/auth"
	"resume-tailor/internal/shared/config"
	"resume-tailor/internal/shared/server"
	"resume-tailor/internal/shared/storage/db"
	"resume-tailor/internal/shared/storage/object"
	localstore "resume-tailor/internal/shared/storage/object/local"
	s3store "resume-tailor/internal/shared/storage/object/s3"
	"resume-tailor/internal/users"
	"resume-tailor/resume/render"
)

// App holds shared dependencies and the wired router.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	Store          object.ObjectStore
	Issuer         *sharedauth.Issuer
	LLM            llm.Client
	UsersService   *users.Service
	ExportsService *exports.Service
	EditorService  *editor.Service
	AIService      *ai.Service
	AuthService    *auth.Service
}

// Build prepares every dependency and mounts the routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	issuer, err := sharedauth.NewIssuer(cfg.JWTSecret, cfg.Env)
	if err != nil {
		return nil, err
	}

	client, err := buildLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		Issuer: issuer,
		LLM:    client,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		DB:             sqlDB,
		Issuer:         issuer,
		AuthHandler:    auth.NewHandler(app.AuthService),
		EditorHandler:  editor.NewHandler(app.EditorService),
		AIHandler:      ai.NewHandler(app.AIService),
		ExportsHandler: exports.NewHandler(app.ExportsService),
		Pages:          true,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	client, err := llm.New(ctx, llm.Options{
		Provider:     cfg.LLMProvider,
		Model:        cfg.LLMModel,
		GoogleAPIKey: cfg.GoogleAPIKey,
		OpenAIAPIKey: cfg.OpenAIAPIKey,
	})
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: %s client unavailable; AI requests will fail: %v", cfg.LLMProvider, err)
			return llm.PlaceholderClient{}, nil
		}
		return nil, err
	}
	return client, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) {
	var exportRepo exports.Repo
	var userRepo users.Repo

	if app.DB != nil {
		exportRepo = &exports.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		exportRepo = exports.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	renderer := render.NewPDFRenderer(render.PDFOptions{
		FontDir: app.Config.FontDir,
		Title:   "Resume",
	})

	app.UsersService = users.NewService(userRepo)
	app.ExportsService = exports.NewService(exportRepo)
	app.EditorService = editor.NewService(renderer, app.Store, app.ExportsService)
	app.AIService = ai.NewService(app.LLM, app.EditorService)
	app.AuthService = auth.NewService(app.Issuer, app.UsersService, auth.LogMailer{}, auth.Options{
		BaseURL:      app.Config.PublicBaseURL,
		LinkTTL:      app.Config.MagicLinkTTL,
		SessionTTL:   app.Config.SessionTTL,
		CookieSecure: app.Config.CookieSecure,
	})
}
