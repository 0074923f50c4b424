package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <item>
      <title>AI agent raises funding</title>
      <link>http://example.com/a</link>
      <description>A startup raised money.</description>
    </item>
    <item>
      <title>Second item</title>
      <link>http://example.com/b</link>
    </item>
  </channel>
</rss>`

const sampleAtom = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>r/artificial</title>
  <entry>
    <title>New model released</title>
    <link href="http://example.com/c"/>
    <content type="html">Some discussion.</content>
  </entry>
</feed>`

func TestDecodeRSS(t *testing.T) {
	entries, err := Decode([]byte(sampleRSS))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "AI agent raises funding", entries[0].Title)
	assert.Equal(t, "http://example.com/a", entries[0].Link)
	assert.Equal(t, "A startup raised money.", entries[0].Summary)
	// missing description defaults to empty
	assert.Empty(t, entries[1].Summary)
}

func TestDecodeAtom(t *testing.T) {
	entries, err := Decode([]byte(sampleAtom))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "New model released", entries[0].Title)
	assert.Equal(t, "http://example.com/c", entries[0].Link)
	assert.Equal(t, "Some discussion.", entries[0].Summary)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte("<html><body>not a feed</body></html>"))
	assert.Error(t, err)
}

func TestFetchNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(2 * time.Second)
	_, err := c.Fetch(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestFetchOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	c := NewClient(2 * time.Second)
	entries, err := c.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
