package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gallery-app/config"
	"gallery-app/database"
	authapi "gallery-app/internal/api/auth"
	"gallery-app/internal/app/http/middleware"
	"gallery-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	database.DB = db
	config.JWT_SECRET = "test-secret"
	return db
}

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/register", authapi.Register)
	r.POST("/auth/login", authapi.Login)
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.POST("/auth/logout", authapi.Logout)
	return r
}

func post(r *gin.Engine, path string, body gin.H) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func registerBody() gin.H {
	return gin.H{
		"username": "collector",
		"email":    "collector@example.com",
		"password": "sunrise7",
	}
}

func TestRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db := setupTestDB(t)
		r := authRouter()

		rec := post(r, "/auth/register", registerBody())
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "password_hash")

		var user users.User
		require.NoError(t, db.First(&user).Error)
		assert.Equal(t, "collector", user.Username)
		assert.Equal(t, users.RoleUser, user.Role)
		require.NotNil(t, user.PasswordHash)
		assert.NotEqual(t, "sunrise7", *user.PasswordHash)
	})

	t.Run("ShortPassword", func(t *testing.T) {
		setupTestDB(t)
		r := authRouter()

		body := registerBody()
		body["password"] = "abc"
		rec := post(r, "/auth/register", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		setupTestDB(t)
		r := authRouter()

		body := registerBody()
		body["email"] = "not-an-email"
		rec := post(r, "/auth/register", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		setupTestDB(t)
		r := authRouter()

		require.Equal(t, http.StatusCreated, post(r, "/auth/register", registerBody()).Code)

		body := registerBody()
		body["username"] = "someone-else"
		rec := post(r, "/auth/register", body)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		setupTestDB(t)
		r := authRouter()

		require.Equal(t, http.StatusCreated, post(r, "/auth/register", registerBody()).Code)

		body := registerBody()
		body["email"] = "other@example.com"
		rec := post(r, "/auth/register", body)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		setupTestDB(t)
		r := authRouter()
		require.Equal(t, http.StatusCreated, post(r, "/auth/register", registerBody()).Code)

		rec := post(r, "/auth/login", gin.H{
			"email":    "collector@example.com",
			"password": "sunrise7",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp struct {
			Data struct {
				Token string `json:"token"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Data.Token)

		cookies := rec.Result().Cookies()
		var found bool
		for _, ck := range cookies {
			if ck.Name == middleware.AuthCookieName {
				found = true
				assert.True(t, ck.HttpOnly)
				assert.Equal(t, resp.Data.Token, ck.Value)
			}
		}
		assert.True(t, found, "login must set the auth cookie")
	})

	t.Run("WrongPassword", func(t *testing.T) {
		setupTestDB(t)
		r := authRouter()
		require.Equal(t, http.StatusCreated, post(r, "/auth/register", registerBody()).Code)

		rec := post(r, "/auth/login", gin.H{
			"email":    "collector@example.com",
			"password": "wrong-pass",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		setupTestDB(t)
		r := authRouter()

		rec := post(r, "/auth/login", gin.H{
			"email":    "ghost@example.com",
			"password": "whatever1",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLogout(t *testing.T) {
	setupTestDB(t)
	r := authRouter()
	require.Equal(t, http.StatusCreated, post(r, "/auth/register", registerBody()).Code)

	login := post(r, "/auth/login", gin.H{
		"email":    "collector@example.com",
		"password": "sunrise7",
	})
	require.Equal(t, http.StatusOK, login.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &resp))

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Data.Token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var cleared bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.AuthCookieName && ck.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "logout must expire the auth cookie")
}

func TestLogout_RequiresAuth(t *testing.T) {
	setupTestDB(t)
	r := authRouter()

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
