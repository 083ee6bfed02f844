package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexiconlab/wordle-cli/internal/game"
	"github.com/lexiconlab/wordle-cli/internal/lexicon"
	"github.com/lexiconlab/wordle-cli/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	lex := lexicon.New()
	require.NoError(t, lex.Ingest(strings.NewReader("apple\nbread\ncrane\ndrain\neagle")))
	require.NoError(t, lex.Sort())

	srv := New(lex, store.NewMemoryStore(), nil)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url, token string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(b))
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return res
}

func decode[T any](t *testing.T, res *http.Response) T {
	t.Helper()
	defer res.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return out
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	res, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestGameFlow(t *testing.T) {
	ts := newTestServer(t)

	res := postJSON(t, ts.URL+"/game/new", "", map[string]string{"answer": "crane"})
	require.Equal(t, http.StatusOK, res.StatusCode)
	created := decode[newGameRes](t, res)
	require.NotEmpty(t, created.GameID)
	require.NotEmpty(t, created.Token)

	// A word off the list is rejected and does not count.
	res = postJSON(t, ts.URL+"/game/guess", created.Token, map[string]string{"guess": "zzzzz"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	res.Body.Close()

	// A valid non-winning guess returns marks and stays in playing.
	res = postJSON(t, ts.URL+"/game/guess", created.Token, map[string]string{"guess": "bread"})
	require.Equal(t, http.StatusOK, res.StatusCode)
	mid := decode[guessRes](t, res)
	assert.Equal(t, "playing", mid.State)
	assert.Equal(t, 1, mid.Guesses)
	assert.Len(t, mid.Marks, 5)

	// Guessing the answer wins.
	res = postJSON(t, ts.URL+"/game/guess", created.Token, map[string]string{"guess": "crane"})
	require.Equal(t, http.StatusOK, res.StatusCode)
	won := decode[guessRes](t, res)
	assert.Equal(t, "won", won.State)
	assert.Equal(t, 2, won.Guesses)
	for _, m := range won.Marks {
		assert.Equal(t, game.MarkExact, m)
	}

	// The session is over: further guesses conflict.
	res = postJSON(t, ts.URL+"/game/guess", created.Token, map[string]string{"guess": "apple"})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	res.Body.Close()
}

func TestGuessRequiresToken(t *testing.T) {
	ts := newTestServer(t)

	res := postJSON(t, ts.URL+"/game/guess", "", map[string]string{"guess": "bread"})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	res.Body.Close()

	res = postJSON(t, ts.URL+"/game/guess", "not-a-token", map[string]string{"guess": "bread"})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	res.Body.Close()
}

func TestNewGameBody(t *testing.T) {
	ts := newTestServer(t)

	// A broken body is rejected rather than falling back to defaults.
	res, err := http.Post(ts.URL+"/game/new", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	res.Body.Close()

	// An empty body is a plain default game.
	res, err = http.Post(ts.URL+"/game/new", "application/json", strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	created := decode[newGameRes](t, res)
	assert.NotEmpty(t, created.GameID)
	assert.NotEmpty(t, created.Token)
}

func TestNewGameRejectsBadAnswer(t *testing.T) {
	ts := newTestServer(t)
	res := postJSON(t, ts.URL+"/game/new", "", map[string]string{"answer": "zzzzz"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	res.Body.Close()
}

func TestNewGameSeedDeterministic(t *testing.T) {
	ts := newTestServer(t)
	seed := int64(4)

	resign := func() string {
		res := postJSON(t, ts.URL+"/game/new", "", map[string]any{"seed": seed})
		require.Equal(t, http.StatusOK, res.StatusCode)
		created := decode[newGameRes](t, res)
		res = postJSON(t, ts.URL+"/game/resign", created.Token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		return decode[map[string]string](t, res)["target"]
	}
	assert.Equal(t, resign(), resign())
}

func TestResign(t *testing.T) {
	ts := newTestServer(t)

	res := postJSON(t, ts.URL+"/game/new", "", map[string]string{"answer": "crane"})
	created := decode[newGameRes](t, res)

	res = postJSON(t, ts.URL+"/game/resign", created.Token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	body := decode[map[string]string](t, res)
	assert.Equal(t, "crane", body["target"])
	assert.Equal(t, "resigned", body["state"])

	// Resigning twice conflicts.
	res = postJSON(t, ts.URL+"/game/resign", created.Token, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	res.Body.Close()
}

func TestScoresDisabled(t *testing.T) {
	ts := newTestServer(t)
	res, err := http.Get(ts.URL + "/scores")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
