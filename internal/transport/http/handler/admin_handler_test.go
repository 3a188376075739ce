package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminListUsers(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "alice@farm.test", "farmer")
	env.seedUser(t, "bob@ranch.test", "farmer")
	_, adminTok := env.seedUser(t, "admin@farm.test", "admin")

	w := env.do(t, http.MethodGet, "/api/admin/users", adminTok, nil)
	requireStatus(t, w, http.StatusOK)
	body := decode(t, w)
	assert.EqualValues(t, 3, body["total"])
	assert.Len(t, body["items"].([]any), 3)

	// 搜索过滤
	w = env.do(t, http.MethodGet, "/api/admin/users?q=ranch", adminTok, nil)
	requireStatus(t, w, http.StatusOK)
	body = decode(t, w)
	assert.EqualValues(t, 1, body["total"])
	row := body["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "bob@ranch.test", row["email"])
}

func TestAdminDeactivateUser(t *testing.T) {
	env := newTestEnv(t)
	alice, _ := env.seedUser(t, "alice@farm.test", "farmer")
	_, adminTok := env.seedUser(t, "admin@farm.test", "admin")

	w := env.do(t, http.MethodPost, "/api/admin/users/"+alice.ID+"/deactivate", adminTok, nil)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, false, decode(t, w)["isActive"])

	got, err := env.users.FindByID(alice.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	w = env.do(t, http.MethodPost, "/api/admin/users/nope/deactivate", adminTok, nil)
	requireStatus(t, w, http.StatusNotFound)
}

func TestAdminEndpoints_RoleGuard(t *testing.T) {
	env := newTestEnv(t)
	_, farmerTok := env.seedUser(t, "alice@farm.test", "farmer")

	w := env.do(t, http.MethodGet, "/api/admin/users", farmerTok, nil)
	requireStatus(t, w, http.StatusForbidden)

	w = env.do(t, http.MethodGet, "/api/admin/users", "", nil)
	requireStatus(t, w, http.StatusUnauthorized)
}
