// Package feed fetches and decodes syndication documents. Only title, link
// and summary are consumed; each is optional and defaults to empty.
package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const userAgent = "content-loop/1.0"

// Entry is the subset of a feed item this pipeline consumes.
type Entry struct {
	Title   string
	Link    string
	Summary string
}

type rssDoc struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Items []struct {
			Title       string `xml:"title"`
			Link        string `xml:"link"`
			Description string `xml:"description"`
		} `xml:"item"`
	} `xml:"channel"`
}

type atomDoc struct {
	XMLName xml.Name `xml:"feed"`
	Entries []struct {
		Title string `xml:"title"`
		Links []struct {
			Href string `xml:"href,attr"`
			Rel  string `xml:"rel,attr"`
		} `xml:"link"`
		Summary string `xml:"summary"`
		Content string `xml:"content"`
	} `xml:"entry"`
}

// Client fetches feeds over HTTP with a bounded timeout.
type Client struct {
	http *http.Client
}

func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{http: &http.Client{Timeout: timeout}}
}

// Fetch retrieves a feed URL and decodes it as RSS, falling back to Atom.
func (c *Client) Fetch(ctx context.Context, feedURL string) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("feed: status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return Decode(body)
}

// Decode parses a syndication document. RSS 2.0 is tried first, then Atom
// (reddit and theverge serve Atom under a .rss/.xml path).
func Decode(body []byte) ([]Entry, error) {
	var rss rssDoc
	if err := xml.Unmarshal(body, &rss); err == nil && rss.XMLName.Local == "rss" {
		out := make([]Entry, 0, len(rss.Channel.Items))
		for _, it := range rss.Channel.Items {
			out = append(out, Entry{
				Title:   strings.TrimSpace(it.Title),
				Link:    strings.TrimSpace(it.Link),
				Summary: strings.TrimSpace(it.Description),
			})
		}
		return out, nil
	}
	var atom atomDoc
	if err := xml.Unmarshal(body, &atom); err == nil && atom.XMLName.Local == "feed" {
		out := make([]Entry, 0, len(atom.Entries))
		for _, e := range atom.Entries {
			link := ""
			for _, l := range e.Links {
				if l.Rel == "" || l.Rel == "alternate" {
					link = l.Href
					break
				}
			}
			summary := e.Summary
			if strings.TrimSpace(summary) == "" {
				summary = e.Content
			}
			out = append(out, Entry{
				Title:   strings.TrimSpace(e.Title),
				Link:    strings.TrimSpace(link),
				Summary: strings.TrimSpace(summary),
			})
		}
		return out, nil
	}
	return nil, fmt.Errorf("feed: unrecognized document format")
}
