package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/estatenexus/estate-backend/internal/api/http"
	"github.com/estatenexus/estate-backend/internal/api/http/middleware"
	"github.com/estatenexus/estate-backend/internal/insights"
	invhttp "github.com/estatenexus/estate-backend/internal/inventory/http"
	"github.com/estatenexus/estate-backend/internal/inventory/repository"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Environment string
	DB          *pgxpool.Pool
	SettingsDB  *sql.DB
	Redis       *redis.Client
	Insights    *insights.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	if dep.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())

	cache := insights.NewCache(dep.Redis, 0)
	insightsSvc := insights.NewService(dep.Insights, cache, nil)

	handler := invhttp.New(
		repository.NewProjectRepo(dep.DB),
		repository.NewSiteRepo(dep.DB),
		repository.NewPaymentRepo(dep.DB),
		repository.NewSettingsRepo(dep.SettingsDB),
		insightsSvc,
	)
	handler.Register(api)

	return r
}
