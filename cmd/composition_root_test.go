package cmd_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coffeeshop/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoot(t *testing.T, cfg cmd.Config, displays io.Writer) *cmd.CompositionRoot {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	root, err := cmd.NewCompositionRoot(context.Background(), cfg, logger, displays)
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close() })
	return root
}

func TestCompositionRoot_DisplaysReceiveEvents(t *testing.T) {
	var displays strings.Builder
	root := newRoot(t, cmd.Config{}, &displays)

	ctx := context.Background()
	o, err := root.OrderService().CreateOrder(ctx)
	require.NoError(t, err)
	_, err = root.OrderService().AddMenuItem(ctx, o.ID(), "Латте", nil)
	require.NoError(t, err)

	out := displays.String()
	assert.Contains(t, out, fmt.Sprintf("[КУХНЯ] Новый заказ №%d создан.", o.ID()))
	assert.Contains(t, out, fmt.Sprintf("[КЛИЕНТ] Ваш заказ №%d создан.", o.ID()))
	assert.Contains(t, out, fmt.Sprintf("[ЛОГ] Заказ №%d создан.", o.ID()))
}

func TestCompositionRoot_HistoryThroughSQLiteJournal(t *testing.T) {
	root := newRoot(t, cmd.Config{
		JournalDriver:  "sqlite",
		JournalDSN:     "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared",
		ReportSchedule: "*/30 * * * * *",
	}, io.Discard)
	router, err := root.CreateRouter()
	require.NoError(t, err)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusCreated, do(http.MethodPost, "/api/v1/orders", "").Code)
	require.Equal(t, http.StatusNoContent, do(http.MethodPut, "/api/v1/orders/1/status", `{"status":"Preparing"}`).Code)

	rec := do(http.MethodGet, "/api/v1/orders/1/history", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var history []struct {
		Event  string `json:"event"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history, 2)
	assert.Equal(t, "created", history[0].Event)
	assert.Equal(t, "status_changed", history[1].Event)
	assert.Equal(t, "Preparing", history[1].Status)

	manager, err := root.CreateJobManager()
	require.NoError(t, err)
	assert.NotNil(t, manager)
}

func TestCompositionRoot_MissingMenuFile(t *testing.T) {
	_, err := cmd.NewCompositionRoot(context.Background(), cmd.Config{MenuFile: "does-not-exist.yaml"}, nil, io.Discard)
	require.Error(t, err)
}
