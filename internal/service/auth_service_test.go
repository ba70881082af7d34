package service

import (
	"testing"

	"pathfinder_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	t.Run("register returns a token", func(t *testing.T) {
		token, err := env.auth.Register("alice@example.com", "alice", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := env.auth.Register("alice@example.com", "alice2", "secret123")
		assert.ErrorIs(t, err, util.ErrEmailRegistered)
	})

	t.Run("login with valid credentials", func(t *testing.T) {
		token, err := env.auth.Login("alice@example.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := env.auth.Login("alice@example.com", "wrong")
		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	})

	t.Run("unknown email reports the same error as wrong password", func(t *testing.T) {
		_, err := env.auth.Login("nobody@example.com", "secret123")
		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	})

	t.Run("password is stored hashed", func(t *testing.T) {
		user, err := env.userRepo.FindByEmail("alice@example.com")
		require.NoError(t, err)
		assert.NotEqual(t, "secret123", user.Password)
	})
}

func TestProfile(t *testing.T) {
	env := seededEnv(t)
	userID := env.registerUser(t, "bob@example.com")

	t.Run("fresh account has empty collections", func(t *testing.T) {
		profile, err := env.auth.Profile(userID)
		require.NoError(t, err)

		assert.Equal(t, "bob@example.com", profile.Email)
		assert.Equal(t, "tester", profile.Username)
		assert.Empty(t, profile.SkillBadges)
		assert.NotNil(t, profile.SkillBadges)
		assert.Empty(t, profile.CompletedSimulations)
		assert.NotNil(t, profile.CompletedSimulations)
	})

	t.Run("profile reflects earned badges", func(t *testing.T) {
		_, err := env.submission.Submit(userID, "devops-deployment-1", "4", nil)
		require.NoError(t, err)

		profile, err := env.auth.Profile(userID)
		require.NoError(t, err)
		assert.Equal(t, []string{"DevOps Engineer"}, profile.SkillBadges)
		assert.Equal(t, []string{"devops-deployment-1"}, profile.CompletedSimulations)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := env.auth.Profile("missing-id")
		assert.ErrorIs(t, err, util.ErrUserNotFound)
	})
}
