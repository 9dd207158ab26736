package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/podshelf/podshelf/internal/domain"
)

type playerResponse struct {
	Player struct {
		Current     *domain.Podcast `json:"current"`
		Playing     bool            `json:"playing"`
		CurrentTime float64         `json:"currentTime"`
		Duration    float64         `json:"duration"`
	} `json:"player"`
}

func (ts *testServer) playerState(t *testing.T, w *httptest.ResponseRecorder) playerResponse {
	t.Helper()
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp playerResponse
	decodeBody(t, w, &resp)
	return resp
}

func TestPlayer_InitiallyIdle(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.playerState(t, ts.do(t, http.MethodGet, "/api/player", "", nil))
	if resp.Player.Current != nil || resp.Player.Playing {
		t.Fatalf("expected idle player, got %+v", resp.Player)
	}
}

func TestPlayer_PlayCountsListen(t *testing.T) {
	ts := newTestServer(t)

	before := ts.getPodcast(t, "1")
	resp := ts.playerState(t, ts.do(t, http.MethodPost, "/api/podcasts/1/play", "", nil))

	if resp.Player.Current == nil || resp.Player.Current.ID != "1" {
		t.Fatalf("expected podcast 1 as target, got %+v", resp.Player.Current)
	}
	if !resp.Player.Playing {
		t.Fatal("expected playing state")
	}
	if resp.Player.Duration != float64(before.Duration) {
		t.Fatalf("expected duration %d, got %v", before.Duration, resp.Player.Duration)
	}

	after := ts.getPodcast(t, "1")
	if after.Listens != before.Listens+1 {
		t.Fatalf("expected listens %d, got %d", before.Listens+1, after.Listens)
	}
}

func TestPlayer_PauseAndToggle(t *testing.T) {
	ts := newTestServer(t)

	ts.playerState(t, ts.do(t, http.MethodPost, "/api/podcasts/1/play", "", nil))

	resp := ts.playerState(t, ts.do(t, http.MethodPost, "/api/player/pause", "", nil))
	if resp.Player.Playing {
		t.Fatal("expected paused state")
	}
	if resp.Player.Current == nil {
		t.Fatal("pause must keep the current target")
	}

	resp = ts.playerState(t, ts.do(t, http.MethodPost, "/api/player/toggle", "", nil))
	if !resp.Player.Playing {
		t.Fatal("expected toggle to resume playback")
	}
}

func TestPlayer_ProgressEndStopsPlayback(t *testing.T) {
	ts := newTestServer(t)

	ts.playerState(t, ts.do(t, http.MethodPost, "/api/podcasts/1/play", "", nil))

	body := fmt.Sprintf(`{"currentTime":%d,"duration":%d}`, 2700, 2700)
	resp := ts.playerState(t, ts.do(t, http.MethodPost, "/api/player/progress", body, nil))
	if resp.Player.Playing {
		t.Fatal("expected playback to stop at the end of the track")
	}
	if resp.Player.CurrentTime != 2700 {
		t.Fatalf("expected currentTime 2700, got %v", resp.Player.CurrentTime)
	}
}

func TestPlayer_ToggleWithoutTargetStaysStopped(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.playerState(t, ts.do(t, http.MethodPost, "/api/player/toggle", "", nil))
	if resp.Player.Playing {
		t.Fatal("toggle without a target must stay stopped")
	}
}
