package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"

	"resume-match/internal/analyses"
	"resume-match/internal/documents"
	"resume-match/internal/match"
	"resume-match/internal/shared/config"
	"resume-match/internal/shared/server"
	"resume-match/internal/shared/storage/db"
	"resume-match/internal/shared/storage/object"
	localstore "resume-match/internal/shared/storage/object/local"
	s3store "resume-match/internal/shared/storage/object/s3"
	"resume-match/internal/uploads"
)

const uploadsDefaultRegion = "us-east-1"

// App holds the wired application graph.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	Analyzer *match.Analyzer

	DocumentsRepo    documents.DocumentsRepo
	DocumentsService *documents.Service
	AnalysesService  *analyses.Service

	DocumentsHandler *documents.Handler
	AnalysisHandler  *analyses.Handler
	UploadsHandler   *uploads.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	analyzer, err := match.New(cfg.MatchConfig())
	if err != nil {
		return nil, fmt.Errorf("analyzer config: %w", err)
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	uploadsHandler, err := buildUploads(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var docRepo documents.DocumentsRepo
	if sqlDB != nil {
		docRepo = &documents.PGRepo{DB: sqlDB}
	} else {
		docRepo = documents.NewMemoryRepo()
	}

	docSvc := &documents.Service{
		Store:           store,
		Repo:            docRepo,
		StorageProvider: cfg.ObjectStoreType,
	}
	analysisSvc := &analyses.Service{
		Analyzer: analyzer,
		Docs:     docSvc,
	}

	app := &App{
		Config:           cfg,
		DB:               sqlDB,
		Store:            store,
		Analyzer:         analyzer,
		DocumentsRepo:    docRepo,
		DocumentsService: docSvc,
		AnalysesService:  analysisSvc,
		DocumentsHandler: documents.NewHandler(docSvc),
		AnalysisHandler:  analyses.NewHandler(analysisSvc),
		UploadsHandler:   uploadsHandler,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:    app.Config,
		Documents: app.DocumentsHandler,
		Analyses:  app.AnalysisHandler,
		Uploads:   app.UploadsHandler,
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

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildUploads(ctx context.Context, cfg config.Config) (*uploads.Handler, error) {
	bucket := strings.TrimSpace(cfg.UploadsBucket)
	if bucket == "" {
		return nil, nil
	}

	region := strings.TrimSpace(cfg.AWSRegion)
	if region == "" {
		region = uploadsDefaultRegion
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return uploads.NewHandler(s3.NewPresignClient(client), bucket, cfg.UploadsPrefix), nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
