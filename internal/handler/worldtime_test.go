package handler

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dan9191/calc-service/internal/engine/worldclock"
	"github.com/gorilla/websocket"
)

func TestWorldTimeStream(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(t, nil))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/world-time/stream?city=London"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var tick worldclock.Tick
	if err := conn.ReadJSON(&tick); err != nil {
		t.Fatalf("first tick: %v", err)
	}
	if len(tick.Readings) != 3 || tick.Readings[0].Slot.City != "London" {
		t.Fatalf("first tick = %+v", tick)
	}

	if err := conn.WriteJSON(selectRequest{Index: 0, City: "Tokyo"}); err != nil {
		t.Fatalf("select: %v", err)
	}
	for {
		tick = worldclock.Tick{}
		if err := conn.ReadJSON(&tick); err != nil {
			t.Fatalf("waiting for reselection: %v", err)
		}
		if len(tick.Readings) > 0 && tick.Readings[0].Slot.City == "Tokyo" {
			break
		}
	}
	if tick.Readings[0].Time != "09:00:00 PM" {
		t.Errorf("Tokyo reading = %+v", tick.Readings[0])
	}
}
