// Package server assembles middleware, storage, and route handlers into
// the HTTP engine.
package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/analyses"
	"ats-backend/internal/ats"
	googleauth "ats-backend/internal/auth"
	"ats-backend/internal/resumes"
	"ats-backend/internal/shared/config"
	"ats-backend/internal/shared/server/middleware"
	"ats-backend/internal/shared/server/respond"
	"ats-backend/internal/shared/storage/db"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(),
	)

	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn.Close()
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var resumeRepo resumes.Repo
	if sqlDB != nil {
		resumeRepo = &resumes.PGRepo{DB: sqlDB}
	} else {
		resumeRepo = resumes.NewMemoryRepo()
	}
	resumeSvc := resumes.NewService(resumeRepo)
	resumeHandler := resumes.NewHandler(resumeSvc)

	var analysisRepo analyses.Repo
	if sqlDB != nil {
		analysisRepo = &analyses.PGRepo{DB: sqlDB}
	} else {
		analysisRepo = analyses.NewMemoryRepo()
	}
	analyzer := ats.New(analyzerConfig(cfg))
	analysisSvc := analyses.NewService(analysisRepo, resumeSvc, analyzer)
	analysisHandler := analyses.NewHandler(analysisSvc, cfg.MaxUploadBytes)

	googleAuthSvc := googleauth.NewGoogleService(
		cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	googleAuthSvc.RegisterRoutes(api)
	resumeHandler.RegisterRoutes(api)

	// Scoring endpoints are CPU bound and run behind a per-identity limit.
	scoring := api.Group("")
	scoring.Use(middleware.RateLimit(30, 10))
	analysisHandler.RegisterRoutes(scoring)

	return r
}

func analyzerConfig(cfg config.Config) ats.Config {
	atsCfg := ats.DefaultConfig()
	if cfg.ATSMaxKeywords > 0 {
		atsCfg.MaxKeywords = cfg.ATSMaxKeywords
	}
	if cfg.ATSMinKeywordLength > 0 {
		atsCfg.MinKeywordLength = cfg.ATSMinKeywordLength
	}
	return atsCfg
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
