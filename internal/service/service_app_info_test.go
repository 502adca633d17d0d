package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.App
		buildInfo   models.AppBuildInfo
		wantVersion string
		wantErr     error
	}{
		{
			name:        "configured version",
			cfg:         config.App{Version: "1.0.0"},
			wantVersion: "1.0.0",
		},
		{
			name:        "configured version wins over build version",
			cfg:         config.App{Version: "1.0.0"},
			buildInfo:   models.NewAppBuildInfo("0.9.0", "2026-10-01", "abc123"),
			wantVersion: "1.0.0",
		},
		{
			name:        "falls back to build version",
			buildInfo:   models.NewAppBuildInfo("v1.2.3-beta+build.42", "2026-10-01", "abc123"),
			wantVersion: "v1.2.3-beta+build.42",
		},
		{
			name:    "no version anywhere",
			wantErr: ErrVersionIsNotSpecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			svc, err := NewAppInfoService(tt.cfg, tt.buildInfo, logger.Nop())

			// Assert
			if tt.wantErr != nil {
				assert.Nil(t, svc)
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantVersion, svc.GetAppVersion(context.Background()))
		})
	}
}

// ─────────────────────────────────────────────
// GetAppVersion / GetBuildInfo
// ─────────────────────────────────────────────

func TestGetAppVersion_DifferentInstances_IndependentVersions(t *testing.T) {
	svc1, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	svc2, err := NewAppInfoService(config.App{Version: "2.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", svc1.GetAppVersion(context.Background()))
	assert.Equal(t, "2.0.0", svc2.GetAppVersion(context.Background()))
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	// GetAppVersion does not use ctx, so it must still return the version
	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

func TestGetBuildInfo(t *testing.T) {
	build := models.NewAppBuildInfo("1.0.0", "2026-10-18", "deadbeef")
	svc, err := NewAppInfoService(config.App{}, build, logger.Nop())
	require.NoError(t, err)

	got := svc.GetBuildInfo(context.Background())

	assert.Equal(t, "1.0.0", got.BuildVersion())
	assert.Equal(t, "2026-10-18", got.BuildDate())
	assert.Equal(t, "deadbeef", got.BuildCommit())
}
