package util

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iv4shk3v1ch/trust-travel-sub001/config"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/repository"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/repository/authmeta"
	db "github.com/iv4shk3v1ch/trust-travel-sub001/internal/repository/postgres"
	"github.com/iv4shk3v1ch/trust-travel-sub001/internal/repository/rediscache"
)

type RepoWrapper struct {
	PlaceRepo   repository.PlaceRepository
	ProfileRepo repository.ProfileRepository
	ReviewRepo  repository.ReviewRepository
	TrustRepo   repository.TrustRepository
	PlanCache   repository.PlanCacheRepository
}

func New(config *config.AppConfig) (repoWrapper *RepoWrapper, err error) {

	var dbConnection *db.RepoDatabase

	dbConnection, err = db.Init(config)
	if err != nil {
		return nil, err
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	repoWrapper = &RepoWrapper{
		PlaceRepo: rediscache.New(redisClient, dbConnection,
			time.Duration(config.CacheTTLSeconds)*time.Second),
		ProfileRepo: dbConnection,
		ReviewRepo:  dbConnection,
		TrustRepo:   dbConnection,
		PlanCache:   authmeta.New(config, httpClient),
	}

	return
}
