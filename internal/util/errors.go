package util

import "errors"

var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrSimulationNotFound = errors.New("simulation not found")
	ErrArtifactNotFound   = errors.New("file not available for this simulation")
)
