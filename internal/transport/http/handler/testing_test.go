package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"smartfarm-api/internal/core/auth"
	"smartfarm-api/internal/domain"
	"smartfarm-api/internal/feature/predict"
	"smartfarm-api/internal/repo"
	"smartfarm-api/internal/transport/http/middleware"
	"smartfarm-api/pkg/utils"
)

func init() { gin.SetMode(gin.TestMode) }

type testEnv struct {
	db    *gorm.DB
	users *repo.UserRepo
	posts *repo.PostRepo
	jwter *auth.JWTer
	r     *gin.Engine
}

// newTestEnv 起一个与生产相同挂载方式的引擎，走内存 sqlite
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.AnalysisRecord{},
		&domain.YieldPrediction{},
		&domain.CommunityPost{},
		&domain.Comment{},
	))

	users := repo.NewUserRepo(db)
	posts := repo.NewPostRepo(db)
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "test", TTL: time.Hour}
	log := zap.NewNop()

	// rand 固定 0.5：扰动 1.0，预测结果可复算
	svc := predict.NewService(predict.DefaultTables(), func() float64 { return 0.5 })

	r := gin.New()
	api := r.Group("/api")
	authed := api.Group("", middleware.AuthJWT(jwter, ""))
	admin := api.Group("/admin", middleware.AuthJWT(jwter, domain.RoleAdmin))

	NewAuthHandler(users, jwter, log, t.TempDir()).Mount(api.Group("/auth"), authed.Group("/auth"))
	NewAnalysisHandler(users).Mount(authed.Group("/auth"))
	NewPredictHandler(svc, users, log).Mount(authed.Group("/predictive-analysis"))
	NewCommunityHandler(posts, users).Mount(api.Group("/community"), authed.Group("/community"))
	NewSoilHandler().Mount(authed.Group("/soil"))
	NewAdminHandler(users).Mount(admin)

	return &testEnv{db: db, users: users, posts: posts, jwter: jwter, r: r}
}

// seedUser 直接落库并签发 token
func (e *testEnv) seedUser(t *testing.T, email, role string) (*domain.User, string) {
	t.Helper()
	u := &domain.User{
		ID:           utils.NewID(),
		Email:        email,
		Name:         "Seed User",
		PasswordHash: utils.HashPassword("secret123"),
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, e.users.Create(u))
	tok, err := e.jwter.Issue(u.ID, u.Role)
	require.NoError(t, err)
	return u, tok
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}
