package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/tutor-marketplace/internal/config"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		env       string
		wantJSON  bool
		wantDebug bool
	}{
		{env: config.EnvLocal, wantJSON: false, wantDebug: true},
		{env: config.EnvDev, wantJSON: true, wantDebug: true},
		{env: config.EnvProd, wantJSON: true, wantDebug: false},
		{env: "unknown", wantJSON: false, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			log := setupLogger(tt.env)
			_, isJSON := log.Handler().(*slog.JSONHandler)
			assert.Equal(t, tt.wantJSON, isJSON)
			assert.Equal(t, tt.wantDebug, log.Enabled(context.Background(), slog.LevelDebug))
		})
	}
}
