package handler

import (
	"errors"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/Dan9191/calc-service/internal/engine/worldclock"
	"github.com/gorilla/websocket"
	"github.com/robfig/cron/v3"
)

const writeWait = 5 * time.Second

// selectRequest reassigns one slot of a live board
type selectRequest struct {
	Index int    `json:"index"`
	City  string `json:"city"`
}

// boardFromQuery builds a board from repeated ?city= parameters, in order
func (h *Handler) boardFromQuery(q url.Values) (*worldclock.Board, error) {
	cities := q["city"]
	n := max(h.cfg.ClockSlots, len(cities))
	board := worldclock.NewBoard(n)
	for i, city := range cities {
		if city == "" {
			continue
		}
		if err := board.Select(i, city); err != nil {
			return nil, err
		}
	}
	return board, nil
}

// Zones lists the selectable cities
func (h *Handler) Zones(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, worldclock.Catalog)
}

// WorldTime renders the selected cities once
func (h *Handler) WorldTime(w http.ResponseWriter, r *http.Request) {
	board, err := h.boardFromQuery(r.URL.Query())
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := h.now()
	tick := worldclock.Tick{At: now}
	if tick.Readings, err = board.Readings(now); err == nil && len(tick.Readings) >= 2 {
		tick.HourDifference, err = board.HourDifference(now)
	}
	if err != nil {
		h.log.Errorf("Failed to render world clock: %v", err)
		h.writeError(w, http.StatusInternalServerError, "time zone data unavailable")
		return
	}
	h.writeJSON(w, http.StatusOK, tick)
}

// WorldTimeStream pushes a tick every second over a websocket. The clock
// lives exactly as long as the connection. Clients may send
// {"index":i,"city":"..."} to reselect a slot.
func (h *Handler) WorldTimeStream(w http.ResponseWriter, r *http.Request) {
	board, err := h.boardFromQuery(r.URL.Query())
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnf("Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()
	// the server's read timeout carries over to the hijacked connection
	conn.SetReadDeadline(time.Time{})

	var (
		writeMu  sync.Mutex
		failOnce sync.Once
		failed   = make(chan struct{})
	)
	notify := func(t worldclock.Tick) {
		writeMu.Lock()
		defer writeMu.Unlock()
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		var err error
		if t.Err != nil {
			err = conn.WriteJSON(map[string]string{"error": t.Err.Error()})
		} else {
			err = conn.WriteJSON(t)
		}
		if err != nil {
			failOnce.Do(func() { close(failed) })
		}
	}

	opts := []worldclock.Option{
		worldclock.WithLogger(cron.PrintfLogger(h.log)),
		worldclock.WithNow(h.now),
	}
	if h.cfg.ClockSpec != "" {
		opts = append(opts, worldclock.WithSpec(h.cfg.ClockSpec))
	}
	clock := worldclock.NewClock(board, notify, opts...)
	if err := clock.Start(); err != nil {
		h.log.Errorf("Failed to start world clock: %v", err)
		return
	}
	defer clock.Stop()
	h.log.Debugf("World clock stream opened for %s", r.RemoteAddr)

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			var req selectRequest
			if err := conn.ReadJSON(&req); err != nil {
				var closeErr *websocket.CloseError
				if !errors.As(err, &closeErr) {
					h.log.Debugf("World clock stream read: %v", err)
				}
				return
			}
			if err := board.Select(req.Index, req.City); err != nil {
				notify(worldclock.Tick{Err: err})
				continue
			}
			clock.Refresh()
		}
	}()

	select {
	case <-closed:
	case <-failed:
	}
	h.log.Debugf("World clock stream closed for %s", r.RemoteAddr)
}
