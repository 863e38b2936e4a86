package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/recipe-sharing-api/internal/constants"
	"github.com/yukikurage/recipe-sharing-api/internal/database"
	"github.com/yukikurage/recipe-sharing-api/internal/dto"
	"github.com/yukikurage/recipe-sharing-api/internal/middleware"
	"github.com/yukikurage/recipe-sharing-api/internal/models"
	"github.com/yukikurage/recipe-sharing-api/internal/repository"
	"github.com/yukikurage/recipe-sharing-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type authTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Recipe{})
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo)
	handler := NewAuthHandler(authService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.POST("/signup", handler.Signup)
	r.POST("/login", handler.Login)
	r.GET("/check_session", middleware.RequireAuth(), handler.CheckSession)
	r.DELETE("/logout", middleware.RequireAuth(), handler.Logout)

	return authTestEnv{db: db, router: r}
}

func (env authTestEnv) do(t *testing.T, method, url string, payload any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func validSignupPayload() map[string]any {
	return map[string]any{
		"username":  "chef_john",
		"password":  "supersecret",
		"image_url": "https://example.com/chef.png",
		"bio":       "Professional chef.",
	}
}

func TestAuthHandler_Signup(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.do(t, http.MethodPost, "/signup", validSignupPayload(), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "chef_john", response.Username)
	require.Equal(t, "https://example.com/chef.png", response.ImageURL)
	require.Equal(t, "Professional chef.", response.Bio)

	require.NotEmpty(t, w.Result().Cookies(), "expected session cookie to be set")
}

func TestAuthHandler_Signup_NeverExposesPassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.do(t, http.MethodPost, "/signup", validSignupPayload(), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.NotContains(t, raw, "password")
	require.NotContains(t, raw, "password_hash")
	require.NotContains(t, raw, "PasswordHash")
}

func TestAuthHandler_Signup_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]any)
		wantMsg string
	}{
		{"missing username", func(p map[string]any) { p["username"] = "" }, "username required"},
		{"missing image_url", func(p map[string]any) { p["image_url"] = "" }, "image_url required"},
		{"missing bio", func(p map[string]any) { p["bio"] = "" }, "bio required"},
		{"short password", func(p map[string]any) { p["password"] = "12345" }, "password must be at least 6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupAuthTestEnv(t)

			payload := validSignupPayload()
			tt.mutate(payload)

			w := env.do(t, http.MethodPost, "/signup", payload, nil)
			require.Equal(t, http.StatusUnprocessableEntity, w.Code)

			var response struct {
				Errors []string `json:"errors"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			require.Equal(t, []string{tt.wantMsg}, response.Errors)
		})
	}
}

func TestAuthHandler_Signup_DuplicateUsername(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.do(t, http.MethodPost, "/signup", validSignupPayload(), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPost, "/signup", validSignupPayload(), nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, []string{"username must be unique"}, response.Errors)

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestAuthHandler_SignupThenCheckSession(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.do(t, http.MethodPost, "/signup", validSignupPayload(), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	cookies := w.Result().Cookies()

	w = env.do(t, http.MethodGet, "/check_session", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "chef_john", response.Username)
}

func TestAuthHandler_CheckSession_Unauthenticated(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.do(t, http.MethodGet, "/check_session", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var response struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Unauthorized", response.Error)
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.do(t, http.MethodPost, "/signup", validSignupPayload(), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	payload := map[string]any{"username": "chef_john", "password": "supersecret"}
	w = env.do(t, http.MethodPost, "/login", payload, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "chef_john", response.Username)
	require.NotEmpty(t, w.Result().Cookies(), "expected session cookie to be set")
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.do(t, http.MethodPost, "/login", map[string]any{"username": "chef_john"}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

// A wrong password and an unknown username must be indistinguishable.
func TestAuthHandler_Login_NoUsernameEnumeration(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.do(t, http.MethodPost, "/signup", validSignupPayload(), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	wrongPassword := env.do(t, http.MethodPost, "/login",
		map[string]any{"username": "chef_john", "password": "notthepassword"}, nil)
	missingUser := env.do(t, http.MethodPost, "/login",
		map[string]any{"username": "nobody", "password": "supersecret"}, nil)

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, missingUser.Code)
	require.JSONEq(t, wrongPassword.Body.String(), missingUser.Body.String())
}

func TestAuthHandler_Logout(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.do(t, http.MethodPost, "/signup", validSignupPayload(), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	cookies := w.Result().Cookies()

	w = env.do(t, http.MethodDelete, "/logout", nil, cookies)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.String())
}

func TestAuthHandler_Logout_Unauthenticated(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.do(t, http.MethodDelete, "/logout", nil, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

// The stored identity must be cleared on logout, not merely ignored: the
// session the client carries afterwards no longer authenticates.
func TestAuthHandler_LogoutClearsIdentity(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := env.do(t, http.MethodPost, "/signup", validSignupPayload(), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	cookies := w.Result().Cookies()

	w = env.do(t, http.MethodDelete, "/logout", nil, cookies)
	require.Equal(t, http.StatusNoContent, w.Code)
	cookies = mergeCookies(cookies, w.Result().Cookies())

	w = env.do(t, http.MethodGet, "/check_session", nil, cookies)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

// mergeCookies applies Set-Cookie updates the way a browser jar would.
func mergeCookies(jar, updates []*http.Cookie) []*http.Cookie {
	merged := make([]*http.Cookie, len(jar))
	copy(merged, jar)
	for _, update := range updates {
		replaced := false
		for i, existing := range merged {
			if existing.Name == update.Name {
				merged[i] = update
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, update)
		}
	}
	return merged
}
