package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"aurora-agency-site/app/server/auth"
	"aurora-agency-site/app/server/background"
	"aurora-agency-site/app/server/constants"
	"aurora-agency-site/app/server/handlers"
	"aurora-agency-site/app/server/kv"
	"aurora-agency-site/app/server/models"
	"aurora-agency-site/app/server/routes"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) (*echo.Echo, *auth.Store) {
	t.Helper()

	mem := kv.NewMemory()
	authStore, err := auth.New(mem, zap.NewNop())
	require.NoError(t, err)
	bgStore, err := background.New(mem)
	require.NoError(t, err)

	e := echo.New()
	routes.Register(e, handlers.NewApp(zap.NewNop(), authStore, bgStore))
	return e, authStore
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func loginAsAdmin(t *testing.T, s *auth.Store) {
	t.Helper()
	_, err := s.Login(constants.SeedAdminEmail, constants.SeedAdminPassword)
	require.NoError(t, err)
}

func TestAuthLogin(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"admin123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.True(t, user.IsAdmin)
	assert.NotNil(t, user.LastLogin)
}

func TestAuthLoginGenericFailureMessage(t *testing.T) {
	e, _ := newTestServer(t)

	// 密码错误和用户不存在必须返回完全相同的响应
	wrongPassword := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"wrongpass"}`)
	unknownEmail := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"whatever"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.Contains(t, wrongPassword.Body.String(), "invalid email or password")
}

func TestAuthLoginMissingFields(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/login", `{"email":"admin@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthSignup(t *testing.T) {
	e, s := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/signup",
		`{"email":"new@x.com","password":"pw123456","name":"New Guy"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, s.IsAuthenticated())

	// 重复注册
	dup := doJSON(e, http.MethodPost, "/api/auth/signup",
		`{"email":"new@x.com","password":"other","name":"Dup"}`)
	assert.Equal(t, http.StatusConflict, dup.Code)
}

func TestAuthSignupEmptyFields(t *testing.T) {
	e, s := newTestServer(t)

	// 空字符串和缺字段一样都是请求错误，不会创建账号
	for _, body := range []string{
		`{"email":"","password":""}`,
		`{"email":"","password":"pw123456"}`,
		`{"email":"new@x.com","password":""}`,
	} {
		rec := doJSON(e, http.MethodPost, "/api/auth/signup", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.False(t, s.IsAuthenticated(), body)
	}

	loginAsAdmin(t, s)
	rec := doJSON(e, http.MethodGet, "/api/admin/users", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.Len(t, users, 2)
}

func TestAuthSessionAndLogout(t *testing.T) {
	e, s := newTestServer(t)

	// 未登录
	rec := doJSON(e, http.MethodGet, "/api/auth/session", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	loginAsAdmin(t, s)
	rec = doJSON(e, http.MethodGet, "/api/auth/session", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// 登出总是成功，重复调用也一样
	rec = doJSON(e, http.MethodPost, "/api/auth/logout", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(e, http.MethodPost, "/api/auth/logout", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, s.IsAuthenticated())
}

func TestUserListGate(t *testing.T) {
	e, s := newTestServer(t)

	// 非管理员拿到空列表而不是错误
	rec := doJSON(e, http.MethodGet, "/api/admin/users", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	loginAsAdmin(t, s)
	rec = doJSON(e, http.MethodGet, "/api/admin/users", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.Len(t, users, 2)
}

func TestUserCreate(t *testing.T) {
	e, s := newTestServer(t)

	// 未登录
	rec := doJSON(e, http.MethodPost, "/api/admin/users",
		`{"email":"staff@example.com","password":"pw","isAdmin":true}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	loginAsAdmin(t, s)
	rec = doJSON(e, http.MethodPost, "/api/admin/users",
		`{"email":"staff@example.com","password":"pw","isAdmin":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.True(t, user.IsAdmin)
}

func TestUserUpdateAndNotFound(t *testing.T) {
	e, s := newTestServer(t)
	loginAsAdmin(t, s)

	rec := doJSON(e, http.MethodPatch, "/api/users/"+constants.SeedUserID,
		`{"name":"Renamed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Renamed")

	rec = doJSON(e, http.MethodPatch, "/api/users/missing-id", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserUpdateLastAdminDemotion(t *testing.T) {
	e, s := newTestServer(t)
	loginAsAdmin(t, s)

	// 唯一的管理员不能把自己降级
	rec := doJSON(e, http.MethodPatch, "/api/users/"+constants.SeedAdminID,
		`{"isAdmin":false}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.True(t, s.IsAdmin())
}

func TestUserDelete(t *testing.T) {
	e, s := newTestServer(t)
	loginAsAdmin(t, s)

	// 管理员目标被拒绝
	rec := doJSON(e, http.MethodDelete, "/api/admin/users/"+constants.SeedAdminID, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/api/admin/users/"+constants.SeedUserID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/api/admin/users/"+constants.SeedUserID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBackgroundUpdate(t *testing.T) {
	e, s := newTestServer(t)

	// 读取对所有人开放
	rec := doJSON(e, http.MethodGet, "/api/background", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "particles")

	// 未登录不能修改
	rec = doJSON(e, http.MethodPut, "/api/background", `{"type":"image","mediaUrl":"https://x/y.jpg"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	loginAsAdmin(t, s)

	// image / video 模式必须带 mediaUrl
	rec = doJSON(e, http.MethodPut, "/api/background", `{"type":"image"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// 未知类型
	rec = doJSON(e, http.MethodPut, "/api/background", `{"type":"rainbow"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(e, http.MethodPut, "/api/background", `{"type":"image","mediaUrl":"https://x/y.jpg"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/background", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"type":"image","mediaUrl":"https://x/y.jpg"}`, rec.Body.String())
}

func TestProtectedPagesRedirect(t *testing.T) {
	e, s := newTestServer(t)

	// 未登录访问管理面板被重定向到登录页
	rec := doJSON(e, http.MethodGet, "/admin", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/signin", rec.Header().Get(echo.HeaderLocation))

	// 普通用户也一样
	_, err := s.Login(constants.SeedUserEmail, constants.SeedUserPassword)
	require.NoError(t, err)
	rec = doJSON(e, http.MethodGet, "/admin", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	// 但可以打开自己的设置页
	rec = doJSON(e, http.MethodGet, "/user/settings", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	loginAsAdmin(t, s)
	rec = doJSON(e, http.MethodGet, "/admin", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPublicPagesAndNotFound(t *testing.T) {
	e, _ := newTestServer(t)

	for _, path := range []string{"/", "/about", "/services", "/blog", "/contact"} {
		rec := doJSON(e, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := doJSON(e, http.MethodGet, "/no-such-page", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestContentAndNavigation(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/content/services", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Digital Marketing Campaigns")

	rec = doJSON(e, http.MethodGet, "/api/content/events", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Digital Marketing Summit 2025")

	rec = doJSON(e, http.MethodGet, "/api/navigation", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/user/settings")

	rec = doJSON(e, http.MethodGet, "/api/navigation/resolve?section=about&from=/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "scroll")
	assert.Contains(t, rec.Body.String(), "smooth")

	// 跨页面跳转要带上渲染等待时间
	rec = doJSON(e, http.MethodGet, "/api/navigation/resolve?section=about&from=/blog", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"delayMs":100`)

	rec = doJSON(e, http.MethodGet, "/api/navigation/resolve?section=nope&from=/", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/healthcheck", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
