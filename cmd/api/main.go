package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"smartfarm-api/internal/core/auth"
	"smartfarm-api/internal/core/cache"
	"smartfarm-api/internal/core/config"
	"smartfarm-api/internal/core/database"
	"smartfarm-api/internal/core/logger"
	"smartfarm-api/internal/core/server"
	"smartfarm-api/internal/domain"
	"smartfarm-api/internal/feature/chatbot"
	"smartfarm-api/internal/feature/predict"
	"smartfarm-api/internal/feature/weather"
	"smartfarm-api/internal/transport/http/response"
	"smartfarm-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := buildLogger(cfg)
	defer cleanup()

	// 生产环境不往响应里带内部错误细节
	response.ExposeDetail = !cfg.Production()

	// 数据库（失败直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(
			&domain.User{},
			&domain.AnalysisRecord{},
			&domain.YieldPrediction{},
			&domain.CommunityPost{},
			&domain.Comment{},
		); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		log.Fatal("upload dir", zap.Error(err))
	}

	// JWT
	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLDays) * 24 * time.Hour,
	}

	// Redis 缓存（留空则天气接口直连上游）
	var cch *cache.Cache
	if cfg.Redis.Addr != "" {
		cch = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	// 预测因子表：配置可覆盖，缺省用内置表
	tables, err := predict.LoadTables(cfg.Predict.TablesPath)
	if err != nil {
		log.Fatal("load predict tables", zap.Error(err))
	}
	predictSvc := predict.NewService(tables, nil)

	weatherCli := weather.NewClient(
		cfg.Weather.BaseURL, cfg.Weather.APIKey,
		time.Duration(cfg.Weather.TimeoutSec)*time.Second,
		cch,
		time.Duration(cfg.Weather.CacheTTLMin)*time.Minute,
	)
	chatbotSvc := chatbot.NewService(
		cfg.Inference.BaseURL,
		time.Duration(cfg.Inference.TimeoutSec)*time.Second,
	)

	r := router.NewAPIEngine(router.Deps{
		Cfg:     cfg,
		Log:     log,
		DB:      db,
		JWTer:   jwter,
		Predict: predictSvc,
		Weather: weatherCli,
		Chatbot: chatbotSvc,
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("smart farming api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api", baseURL+"/api"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	log.Info("api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func buildLogger(cfg *config.Config) (*zap.Logger, func()) {
	if r := cfg.Log.Rotate; r.Enable {
		return logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate{
			Filename:   r.Filename,
			MaxSizeMB:  r.MaxSizeMB,
			MaxBackups: r.MaxBackups,
			MaxAgeDays: r.MaxAgeDays,
			Compress:   r.Compress,
		})
	}
	return logger.New(cfg.Log.Level, cfg.Log.JSON)
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
