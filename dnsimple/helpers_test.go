package dnsimple

import (
	"bufio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

const testToken = "some-auth-token"

// mockServer replays one fixture and records what it was sent.
type mockServer struct {
	client *Client

	mu        sync.Mutex
	lastBody  []byte
	lastQuery url.Values
	hits      int
}

func (m *mockServer) body() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.lastBody)
}

func (m *mockServer) query() url.Values {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastQuery
}

func (m *mockServer) requests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hits
}

// readFixture parses testdata/fixtures/<name>.http as a raw HTTP response.
func readFixture(t *testing.T, name string) (*http.Response, []byte) {
	t.Helper()

	f, err := os.Open(filepath.Join("testdata", "fixtures", name+".http"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	resp, err := http.ReadResponse(bufio.NewReader(f), nil)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, body
}

// setupMockFor serves fixture for method and path (relative to /v2) and
// returns a client pointed at it.
func setupMockFor(t *testing.T, method, path, fixture string) *mockServer {
	t.Helper()

	fixtureResp, fixtureBody := readFixture(t, fixture)
	m := &mockServer{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		m.mu.Lock()
		m.lastBody = body
		m.lastQuery = r.URL.Query()
		m.hits++
		m.mu.Unlock()

		assert.Equal(t, method, r.Method)
		assert.Equal(t, "/v2"+path, r.URL.EscapedPath())
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, defaultUserAgent, r.Header.Get("User-Agent"))

		for name, values := range fixtureResp.Header {
			if name == "Content-Length" || name == "Transfer-Encoding" {
				continue
			}

			for _, v := range values {
				w.Header().Add(name, v)
			}
		}

		w.WriteHeader(fixtureResp.StatusCode)
		_, _ = w.Write(fixtureBody)
	}))
	t.Cleanup(srv.Close)

	m.client = NewClient(NewConfig(true, testToken).WithBaseURL(srv.URL))
	return m
}
