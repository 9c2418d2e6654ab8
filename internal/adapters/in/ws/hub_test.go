package ws_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"coffeeshop/internal/adapters/in/ws"
	"coffeeshop/internal/core/domain/model/order"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, hub *ws.Hub) string {
	t.Helper()
	e := echo.New()
	e.GET("/ws/kitchen", hub.ServeWS)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/kitchen"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHub_BroadcastsToEveryBoard(t *testing.T) {
	hub := ws.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	url := newServer(t, hub)

	first := dial(t, url)
	second := dial(t, url)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	o, err := order.NewOrder(5)
	require.NoError(t, err)
	require.NoError(t, o.Subscribe(hub))
	require.NoError(t, o.SetStatus(context.Background(), order.Preparing))

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var msg ws.Message
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, "status_changed", msg.Type)
		assert.Equal(t, 5, msg.Order.OrderID)
		assert.Equal(t, "готовится", msg.Order.StatusLabel)
	}
}

func TestHub_ForgetsClosedBoards(t *testing.T) {
	hub := ws.NewHub(nil)
	url := newServer(t, hub)

	conn := dial(t, url)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_NotifyWithoutBoards(t *testing.T) {
	hub := ws.NewHub(nil)
	o, err := order.NewOrder(1)
	require.NoError(t, err)

	require.NoError(t, hub.Notify(context.Background(), o, order.EventCreated))
	hub.Close()
	assert.Zero(t, hub.ClientCount())
}
