package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/service"
	"github.com/MKhiriev/go-posts/internal/store"
	"github.com/MKhiriev/go-posts/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStoredPostsHandler serves the post routes over a real SQLite database.
// Records of every level reach the returned buffer.
func newStoredPostsHandler(t *testing.T) (*Handler, *store.Storages, *logBuffer) {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "posts.db")
	storages, err := store.NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := service.NewServices(storages, config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	buf := &logBuffer{}
	log := &logger.Logger{Logger: zerolog.New(buf).Level(zerolog.DebugLevel)}

	return NewHandler(services, log), storages, buf
}

func TestPostRoutes_OverStorage_OneRecordPerRequest(t *testing.T) {
	// Arrange
	h, storages, logs := newStoredPostsHandler(t)

	rr := serve(h, http.MethodPost, "/node_api/create", `{"user_id":1,"title":"hello","tags":["go"]}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var created models.Post
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	removeBody := fmt.Sprintf(`{"id":%d}`, created.ID)

	t.Run("remove succeeds", func(t *testing.T) {
		logs.Reset()

		// Act
		rr := serve(h, http.MethodPatch, "/node_api/remove", removeBody)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		infos := logs.records(t, "info")
		require.Len(t, infos, 1)
		assert.Equal(t, `"PATCH node_api/remove" - 200`, infos[0].Message)
		assert.Empty(t, logs.records(t, "error"))
	})

	t.Run("removing a removed post fails", func(t *testing.T) {
		logs.Reset()

		// Act
		rr := serve(h, http.MethodPatch, "/node_api/remove", removeBody)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, failureBody, rr.Body.String())
		assert.Len(t, logs.records(t, "error"), 1)
		assert.Empty(t, logs.records(t, "info"))
	})

	t.Run("closed database fails", func(t *testing.T) {
		require.NoError(t, storages.Close())
		logs.Reset()

		// Act
		rr := serve(h, http.MethodPost, "/node_api/search", `{"query":"a"}`)

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, failureBody, rr.Body.String())
		errs := logs.records(t, "error")
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Message, "database is closed")
		assert.Empty(t, logs.records(t, "info"))
	})
}
