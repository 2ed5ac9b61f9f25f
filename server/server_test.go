package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Nydauron/teamscore/leaderboard"
	"github.com/Nydauron/teamscore/store"
	"github.com/Nydauron/teamscore/tournament"
)

func newTestServer(t *testing.T, setup func(s *tournament.State)) (*httptest.Server, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tournament_data.json")
	st := store.NewJSONFile(path, zaptest.NewLogger(t))
	if setup != nil {
		s := tournament.New()
		setup(s)
		require.NoError(t, st.Save(context.Background(), s.Snapshot()))
	}
	srv := httptest.NewServer(New(st, tournament.DefaultCapacity, zaptest.NewLogger(t)).Routes())
	t.Cleanup(srv.Close)
	return srv, path
}

func scored(t *testing.T) func(s *tournament.State) {
	return func(s *tournament.State) {
		require.NoError(t, s.InitializeTeams(2, 4))
		require.NoError(t, s.AddMember("Team 2", "bob"))
		require.NoError(t, s.SelectEvent("Ping Pong Tournament"))
		_, err := s.RecordScore("Team 1", tournament.ScoreInput{Wins: "2", Losses: "1"})
		require.NoError(t, err)
		_, err = s.RecordScore("Team 2", tournament.ScoreInput{Wins: "1", Losses: "2"})
		require.NoError(t, err)
	}
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	var body bytes.Buffer
	_, err = body.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, []byte(body.String())
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	resp, body := get(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(body))
}

func TestGetLeaderboard(t *testing.T) {
	srv, _ := newTestServer(t, scored(t))
	resp, body := get(t, srv.URL+"/leaderboard")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var board leaderboard.Board
	require.NoError(t, json.Unmarshal(body, &board))
	assert.Equal(t, "Ping Pong Tournament", board.Event)
	assert.Equal(t, []leaderboard.Entry{
		{Rank: 1, Team: "Team 1", Score: 7, Detail: "2/1"},
		{Rank: 2, Team: "Team 2", Score: 4, Detail: "1/2"},
	}, board.Entries)
}

func TestGetLeaderboard_NothingSaved(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	resp, body := get(t, srv.URL+"/leaderboard")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"standings": []}`, string(body))
}

func TestExportLeaderboard(t *testing.T) {
	srv, _ := newTestServer(t, scored(t))

	resp, body := get(t, srv.URL+"/leaderboard/csv")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, "Rank,Team Name,Score,Wins/Losses\n1,Team 1,7,2/1\n2,Team 2,4,1/2\n", string(body))

	resp, _ = get(t, srv.URL+"/leaderboard/png")
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	resp, _ = get(t, srv.URL+"/leaderboard/pdf")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExportLeaderboard_Empty(t *testing.T) {
	srv, _ := newTestServer(t, nil)
	resp, body := get(t, srv.URL+"/leaderboard/csv")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), "No teams or scores to export.")
}

func TestTeamsAndStatus(t *testing.T) {
	srv, _ := newTestServer(t, scored(t))

	resp, body := get(t, srv.URL+"/teams/Team%202")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"name":"Team 2","members":["bob"],"capacity":4,"score":4,"scored":true}`, string(body))

	resp, _ = get(t, srv.URL+"/teams/Team%209")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = get(t, srv.URL+"/status")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status statusDTO
	require.NoError(t, json.Unmarshal(body, &status))
	require.NotNil(t, status.CurrentEvent)
	assert.Equal(t, "Ping Pong Tournament", *status.CurrentEvent)
	assert.Len(t, status.Teams, 2)
}

func TestListEvents(t *testing.T) {
	srv, _ := newTestServer(t, scored(t))
	_, body := get(t, srv.URL+"/events")

	var events []eventDTO
	require.NoError(t, json.Unmarshal(body, &events))
	require.Len(t, events, len(tournament.BuiltinEvents))
	assert.True(t, events[0].Active)
	assert.False(t, events[1].Active)
}

func TestCorruptData(t *testing.T) {
	srv, path := newTestServer(t, nil)
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	resp, _ := get(t, srv.URL+"/leaderboard")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestMetrics(t *testing.T) {
	srv, _ := newTestServer(t, scored(t))
	get(t, srv.URL+"/leaderboard")
	get(t, srv.URL+"/teams/Team%201")

	resp, body := get(t, srv.URL+"/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `teamscore_http_requests_total{code="200",route="/leaderboard"} 1`)
	assert.Contains(t, string(body), `teamscore_http_requests_total{code="200",route="/teams/{name}"} 1`)
}
