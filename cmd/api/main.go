package main

import (
	"fmt"
	"net/http"
	"time"

	"vibetube-go/internal/api/handler"
	"vibetube-go/internal/api/middleware"
	"vibetube-go/internal/api/router"
	"vibetube-go/internal/config"
	"vibetube-go/internal/infra/database"
	infraMinio "vibetube-go/internal/infra/minio"
	"vibetube-go/internal/model"
	"vibetube-go/internal/repository"
	"vibetube-go/internal/service"
	"vibetube-go/pkg/logger"
	"vibetube-go/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title VibeTube API
// @version 1.0
// @description 视频分享平台 API 服务

// @host 127.0.0.1:8000
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 输入格式: Bearer {token}

func main() {
	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(
		cfg.Log.Level,
		cfg.Log.Format,
		cfg.Log.Output,
		cfg.Log.FilePath,
	); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化数据库
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	// 自动迁移数据库表
	if err := database.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.Like{},
		&model.Comment{},
		&model.View{},
		&model.Subscription{},
	); err != nil {
		logger.Fatal("Failed to auto migrate", zap.Error(err))
	}

	// 初始化MinIO
	if err := infraMinio.Init(&cfg.MinIO); err != nil {
		logger.Fatal("Failed to init minio", zap.Error(err))
	}

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	// 创建Gin路由器（不使用默认中间件）
	r := gin.New()

	// 使用自定义中间件
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())

	// JWT 签发器，密钥和算法来自配置
	tokenMaker, err := utils.NewTokenMaker(&cfg.JWT, cfg.App.Name)
	if err != nil {
		logger.Fatal("Failed to init token maker", zap.Error(err))
	}

	// 初始化依赖（Repository -> Service -> Handler）
	db := database.Get()
	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	viewRepo := repository.NewViewRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)

	authService := service.NewAuthService(userRepo, tokenMaker)
	videoService := service.NewVideoService(videoRepo, userRepo, &cfg.MinIO)
	catalogService := service.NewCatalogService(videoRepo, commentRepo)
	commentService := service.NewCommentService(commentRepo, videoRepo, userRepo)
	engagementService := service.NewEngagementService(likeRepo, viewRepo, subRepo, videoRepo, userRepo)

	authHandler := handler.NewAuthHandler(authService)
	videoHandler := handler.NewVideoHandler(videoService, catalogService)
	engagementHandler := handler.NewEngagementHandler(engagementService)
	commentHandler := handler.NewCommentHandler(commentService, catalogService)

	// 注册基础路由
	r.GET("/healthz", healthCheckHandler(cfg))

	// 注册业务路由
	router.Setup(r, tokenMaker, authHandler, videoHandler, engagementHandler, commentHandler)

	// 启动HTTP服务器
	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)
	logger.Info("Configuration loaded",
		zap.String("database", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
		zap.String("minio", cfg.MinIO.Endpoint),
	)

	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// healthCheckHandler 健康检查接口
func healthCheckHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger.Debug("Health check requested", zap.String("ip", c.ClientIP()))

		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"message":   "Service is healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   cfg.App.Name,
			"version":   cfg.App.Version,
			"mode":      cfg.App.Mode,
		})
	}
}
