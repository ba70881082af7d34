package service

import (
	"path/filepath"
	"testing"
	"time"

	"pathfinder_backend/internal/config"
	"pathfinder_backend/internal/repository"
	"pathfinder_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testEnv wires the full service stack against a throwaway sqlite database.
type testEnv struct {
	db         *gorm.DB
	auth       *AuthService
	catalog    *CatalogService
	artifact   *ArtifactService
	submission *SubmissionService
	userRepo   *repository.UserRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

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

	return &testEnv{
		db:         db,
		auth:       NewAuthService(userRepo, cfg),
		catalog:    NewCatalogService(fieldRepo, simRepo),
		artifact:   NewArtifactService(simRepo),
		submission: NewSubmissionService(simRepo, userRepo, submissionRepo),
		userRepo:   userRepo,
	}
}

// seededEnv is a testEnv with the built-in catalog loaded.
func seededEnv(t *testing.T) *testEnv {
	t.Helper()
	env := newTestEnv(t)
	require.NoError(t, env.catalog.EnsureSeeded())
	return env
}

// registerUser creates an account and returns its id.
func (e *testEnv) registerUser(t *testing.T, email string) string {
	t.Helper()
	_, err := e.auth.Register(email, "tester", "secret123")
	require.NoError(t, err)
	user, err := e.userRepo.FindByEmail(email)
	require.NoError(t, err)
	return user.ID
}
