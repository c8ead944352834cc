// Package logger builds the structured logger shared across the server.
package logger

import (
	"go.uber.org/zap"
)

// New returns a zap logger matching the run mode: JSON production output
// in release mode, human-readable output otherwise.
func New(mode string) (*zap.Logger, error) {
	if mode == "release" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
