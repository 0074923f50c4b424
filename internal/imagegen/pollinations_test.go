package imagegen

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestGen(srvURL string) *Pollinations {
	return NewPollinations(PollinationsConfig{
		BaseURL: srvURL,
		Width:   1200,
		Height:  675,
		Timeout: 2 * time.Second,
	})
}

func TestCoverURLEmptyPrompt(t *testing.T) {
	g := newTestGen("http://unused")
	assert.Empty(t, g.CoverURL(context.Background(), "   "))
}

func TestCoverURLAvailable(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.RequestURI()
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	g := newTestGen(srv.URL)
	got := g.CoverURL(context.Background(), "futuristic robots")
	assert.Equal(t, http.MethodHead, gotMethod)
	assert.True(t, strings.HasPrefix(got, srv.URL+"/"))
	assert.Contains(t, got, "width=1200")
	assert.Contains(t, got, "height=675")
	assert.Contains(t, got, "nologo=true")
	// stylistic suffix appended before encoding
	assert.Contains(t, gotPath, "minimalist")
}

func TestCoverURLUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	g := newTestGen(srv.URL)
	assert.Empty(t, g.CoverURL(context.Background(), "anything"))
}
