package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/errorpool/internal/config"
	mysqlRepo "github.com/Guyuepp/errorpool/internal/repository/mysql"
	myRedis "github.com/Guyuepp/errorpool/internal/repository/redis"
	"github.com/Guyuepp/errorpool/internal/rest"
	"github.com/Guyuepp/errorpool/internal/rest/middleware"
	"github.com/Guyuepp/errorpool/internal/taxonomy"
	"github.com/Guyuepp/errorpool/internal/usecase/article"
	"github.com/Guyuepp/errorpool/internal/usecase/like"
	"github.com/Guyuepp/errorpool/internal/usecase/rank"
	"github.com/Guyuepp/errorpool/internal/workers"
)

const (
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func openDB(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			logrus.Warnf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				err = dbErr
				logrus.Warnf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			if err = sqlDB.Ping(); err == nil {
				return db, nil
			}
			logrus.Warnf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}
	return nil, err
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}
	cfg.SetupLogging()

	// prepare database
	db, err := openDB(cfg.DSN())
	if err != nil {
		logrus.Fatalf("could not connect to database after retries: %v", err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Errorf("got error when getting sql.DB from gorm.DB: %v", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Errorf("got error when closing the DB connection: %v", err)
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := mysqlRepo.AutoMigrate(db); err != nil {
			logrus.Fatalf("failed to migrate schema: %v", err)
		}
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.CacheAddr(),
		Password: cfg.Cache.Pass,
		DB:       cfg.Cache.DB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Errorf("got error when closing the cache connection: %v", err)
		}
	}()

	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.Fatalf("failed to open connection to cache: %v", err)
	}

	// Prepare Repository
	articleRepo := mysqlRepo.NewArticleRepository(db)
	likeRepo := mysqlRepo.NewLikeRepository(db)
	transactor := mysqlRepo.NewTransactor(db)
	bloomRepo := myRedis.NewRedisBloomRepo(client, cfg.BloomFilterSize)
	likeLocker := myRedis.NewLikeLocker(client, cfg.LikeLockTTL, cfg.LikeLockWait)
	resolver := taxonomy.NewResolver()

	// Build service Layer
	articleSvc := article.NewService(articleRepo, likeRepo, resolver, transactor, bloomRepo)
	likeSvc := like.NewService(articleSvc, articleRepo, likeRepo, likeLocker, transactor)
	rankSvc := rank.NewService(articleRepo, resolver)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Prepare bloom filter
	if err := articleSvc.InitBloomFilter(ctx); err != nil {
		logrus.Errorf("failed to init bloom filter: %v", err)
		return
	}

	// Start worker
	var wg sync.WaitGroup
	reconciler := workers.NewReconcileLikesWorker(articleRepo, cfg.LikesReconcileInterval)
	wg.Add(1)
	go func() {
		defer wg.Done()
		reconciler.Start(ctx)
	}()

	// prepare gin
	route := gin.New()
	route.Use(gin.Logger(), gin.Recovery())
	route.Use(middleware.CORS())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))

	rest.RegisterRoutes(route,
		rest.NewArticleHandler(articleSvc),
		rest.NewLikeHandler(likeSvc),
		rest.NewRankHandler(rankSvc),
		middleware.AuthMiddleware(cfg.JWTSecret),
	)

	// Start Server
	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Waiting for worker to cleanup...")
	wg.Wait()

	logrus.Info("Server exiting")
}
