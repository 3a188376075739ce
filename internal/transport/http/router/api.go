package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"smartfarm-api/internal/core/auth"
	"smartfarm-api/internal/core/config"
	"smartfarm-api/internal/domain"
	"smartfarm-api/internal/feature/chatbot"
	"smartfarm-api/internal/feature/predict"
	"smartfarm-api/internal/feature/weather"
	"smartfarm-api/internal/repo"
	"smartfarm-api/internal/transport/http/handler"
	mdw "smartfarm-api/internal/transport/http/middleware"
)

// Deps 路由装配需要的外部件，全部在 main 里构好传进来
type Deps struct {
	Cfg     *config.Config
	Log     *zap.Logger
	DB      *gorm.DB
	JWTer   *auth.JWTer
	Predict *predict.Service
	Weather *weather.Client
	Chatbot *chatbot.Service
}

func NewAPIEngine(d Deps) *gin.Engine {
	if d.Cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// 中间件
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(d.Log, true),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
		cors.Default(),
	)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Smart Farming API"})
	})
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.Static("/uploads", d.Cfg.Upload.Dir)

	var users domain.UserRepository = repo.NewUserRepo(d.DB)
	var posts domain.PostRepository = repo.NewPostRepo(d.DB)

	api := r.Group("/api")

	// 鉴权分组：farmer / admin 都能进；admin 组额外要求角色
	authed := api.Group("", mdw.AuthJWT(d.JWTer, ""))
	admin := api.Group("/admin", mdw.AuthJWT(d.JWTer, domain.RoleAdmin))

	authH := handler.NewAuthHandler(users, d.JWTer, d.Log, d.Cfg.Upload.Dir)
	authH.Mount(api.Group("/auth"), authed.Group("/auth"))

	handler.NewAnalysisHandler(users).Mount(authed.Group("/auth"))
	handler.NewPredictHandler(d.Predict, users, d.Log).Mount(authed.Group("/predictive-analysis"))
	handler.NewCommunityHandler(posts, users).Mount(api.Group("/community"), authed.Group("/community"))
	handler.NewSoilHandler().Mount(authed.Group("/soil"))
	handler.NewChatbotHandler(d.Chatbot).Mount(authed.Group("/chatbot"))
	handler.NewWeatherHandler(d.Weather).Mount(authed.Group("/weather"))

	advisory := handler.NewAdvisoryHandler()
	advisory.MountIrrigation(authed.Group("/irrigation"))
	advisory.MountLeafAnalysis(authed.Group("/leaf-analysis"))

	handler.NewAdminHandler(users).Mount(admin)

	return r
}
