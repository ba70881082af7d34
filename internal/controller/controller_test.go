package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"pathfinder_backend/internal/config"
	"pathfinder_backend/internal/middleware"
	"pathfinder_backend/internal/repository"
	"pathfinder_backend/internal/service"
	"pathfinder_backend/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestRouter stands up the API against a throwaway sqlite database with
// the same route shape main uses.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-secret"
	cfg.JWT.ExpireTime = 30 * time.Minute

	userRepo := repository.NewUserRepository(db)
	fieldRepo := repository.NewFieldRepository(db)
	simRepo := repository.NewSimulationRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	catalogService := service.NewCatalogService(fieldRepo, simRepo)
	require.NoError(t, catalogService.EnsureSeeded())

	auth := NewAuthController(service.NewAuthService(userRepo, cfg))
	catalog := NewCatalogController(catalogService, service.NewArtifactService(simRepo))
	submission := NewSubmissionController(service.NewSubmissionService(simRepo, userRepo, submissionRepo))
	admin := NewAdminController(catalogService)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/health", NewHealthController().Health)
	api.POST("/auth/register", auth.Register)
	api.POST("/auth/login", auth.Login)
	api.GET("/tech-fields", catalog.ListFields)
	api.GET("/tech-fields/:field_id/simulations", catalog.ListSimulationsByField)
	api.GET("/simulations", catalog.ListSimulations)
	api.GET("/simulations/:simulation_id", catalog.GetSimulation)
	api.GET("/simulations/:simulation_id/file", catalog.GetSimulationFile)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(cfg))
	authed.GET("/auth/me", auth.Me)
	authed.POST("/simulations/submit", submission.Submit)
	authed.GET("/submissions", submission.History)

	adminGroup := api.Group("/admin")
	adminGroup.POST("/init-tech-fields", admin.InitFields)
	adminGroup.POST("/init-simulations", admin.InitSimulations)
	adminGroup.POST("/merge-simulation-questions", admin.MergeQuestions)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func registerAndLogin(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"email": email, "username": "tester", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &token))
	require.Equal(t, "bearer", token.TokenType)
	require.NotEmpty(t, token.AccessToken)
	return token.AccessToken
}

func TestAuthEndpoints(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "http@example.com")

	t.Run("duplicate registration", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
			"email": "http@example.com", "username": "tester", "password": "secret123",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Email already registered", decodeEnvelope(t, w).Message)
	})

	t.Run("short password rejected by binding", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
			"email": "short@example.com", "username": "tester", "password": "abc",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad credentials", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
			"email": "http@example.com", "password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Incorrect email or password", decodeEnvelope(t, w).Message)
	})

	t.Run("me requires a token", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("me with a valid token", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var profile struct {
			Email                string   `json:"email"`
			SkillBadges          []string `json:"skill_badges"`
			CompletedSimulations []string `json:"completed_simulations"`
		}
		env := decodeEnvelope(t, w)
		require.NoError(t, json.Unmarshal(env.Data, &profile))
		assert.Equal(t, "http@example.com", profile.Email)
		assert.NotNil(t, profile.SkillBadges)
		assert.NotNil(t, profile.CompletedSimulations)
	})
}

func TestCatalogEndpoints(t *testing.T) {
	r := newTestRouter(t)

	t.Run("tech fields", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/tech-fields", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var fields []gin.H
		env := decodeEnvelope(t, w)
		require.NoError(t, json.Unmarshal(env.Data, &fields))
		assert.Len(t, fields, 7)
	})

	t.Run("simulations by field", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/tech-fields/cybersecurity/simulations", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var sims []gin.H
		env := decodeEnvelope(t, w)
		require.NoError(t, json.Unmarshal(env.Data, &sims))
		assert.Len(t, sims, 2)
	})

	t.Run("public projection hides grading data", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/simulations/se-debugging-1", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "correct_answer")
		assert.NotContains(t, w.Body.String(), "badge")
	})

	t.Run("unknown simulation", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/simulations/nope-0", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Simulation not found", decodeEnvelope(t, w).Message)
	})

	t.Run("exercise file", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/simulations/cyber-password-1/file", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var asset struct {
			Filename string `json:"filename"`
			Content  string `json:"content"`
			MimeType string `json:"mime_type"`
		}
		env := decodeEnvelope(t, w)
		require.NoError(t, json.Unmarshal(env.Data, &asset))
		assert.Equal(t, "password_hashes.txt", asset.Filename)
		assert.Equal(t, "text/plain", asset.MimeType)
		assert.NotEmpty(t, asset.Content)
	})

	t.Run("file for unknown simulation", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/simulations/nope-0/file", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSubmitEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "submit@example.com")

	t.Run("requires a token", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/simulations/submit", "", gin.H{
			"simulation_id": "se-debugging-1", "answer": "5",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing simulation_id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/simulations/submit", token, gin.H{"answer": "5"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "simulation_id is required", decodeEnvelope(t, w).Message)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/simulations/submit", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("numeric answer sent as a JSON number", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/simulations/submit", token, gin.H{
			"simulation_id": "se-debugging-1", "answer": 5,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var sub struct {
			IsCorrect   bool   `json:"is_correct"`
			BadgeEarned string `json:"skill_badge_earned"`
		}
		env := decodeEnvelope(t, w)
		require.NoError(t, json.Unmarshal(env.Data, &sub))
		assert.True(t, sub.IsCorrect)
		assert.Equal(t, "Debugging Specialist", sub.BadgeEarned)
	})

	t.Run("question answers under the id alias", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/simulations/submit", token, gin.H{
			"id": "se-testing-1",
			"answers": []gin.H{
				{"id": "q1", "answer": 7},
				{"question_id": "q2", "answer": "division by zero"},
			},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var sub struct {
			IsCorrect bool `json:"is_correct"`
		}
		env := decodeEnvelope(t, w)
		require.NoError(t, json.Unmarshal(env.Data, &sub))
		assert.True(t, sub.IsCorrect)
	})

	t.Run("unknown simulation with question answers", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/simulations/submit", token, gin.H{
			"simulation_id": "nope-0",
			"answers":       []gin.H{{"question_id": "q1", "answer": "x"}},
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status  string `json:"status"`
		Service string `json:"service"`
	}
	env := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "Project Pathfinder API", body.Service)
}

func TestSubmissionHistoryEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndLogin(t, r, "history@example.com")

	t.Run("requires a token", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/submissions", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("returns recorded submissions", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/simulations/submit", token, gin.H{
			"simulation_id": "se-debugging-1", "answer": "5",
		})
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodGet, "/api/submissions", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var subs []struct {
			SimulationID string `json:"simulation_id"`
			IsCorrect    bool   `json:"is_correct"`
		}
		env := decodeEnvelope(t, w)
		require.NoError(t, json.Unmarshal(env.Data, &subs))
		require.Len(t, subs, 1)
		assert.Equal(t, "se-debugging-1", subs[0].SimulationID)
		assert.True(t, subs[0].IsCorrect)
	})
}

func TestAdminEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/init-tech-fields", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Initialized 7 tech fields successfully")

	w = doJSON(t, r, http.MethodPost, "/api/admin/init-simulations", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Initialized 16 tech simulations successfully")

	w = doJSON(t, r, http.MethodPost, "/api/admin/merge-simulation-questions", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Merged questions into 16 existing simulations")
}
