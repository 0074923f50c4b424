// Package markdown composes and parses article documents with YAML
// frontmatter. Persisted article bodies use this format so the publishing
// frontend can read metadata without a second lookup.
package markdown

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document represents a Markdown document with YAML frontmatter.
type Document struct {
	Frontmatter map[string]any
	Body        string
}

// Compose renders a document as frontmatter between "---" lines followed by
// the body. A document with no frontmatter renders as the bare body.
func Compose(d Document) (string, error) {
	if len(d.Frontmatter) == 0 {
		return d.Body, nil
	}
	fm, err := yaml.Marshal(d.Frontmatter)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("---\n")
	b.Write(fm)
	b.WriteString("---\n\n")
	b.WriteString(d.Body)
	return b.String(), nil
}

// Parse extracts YAML frontmatter and body from a document. Frontmatter is
// expected at the top between two lines containing only "---".
func Parse(content string) (Document, error) {
	br := bufio.NewReader(strings.NewReader(content))
	peek, err := br.Peek(3)
	if err != nil && !errors.Is(err, io.EOF) {
		return Document{}, err
	}
	hasFM := string(peek) == "---"

	var fmBuf strings.Builder
	var bodyBuf strings.Builder

	if hasFM {
		// Consume first '---' line fully
		if _, err := br.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
			return Document{}, err
		}
		for {
			l, err := br.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return Document{}, err
			}
			if strings.TrimSpace(l) == "---" {
				break
			}
			fmBuf.WriteString(l)
			if errors.Is(err, io.EOF) {
				break
			}
		}
	}
	for {
		l, err := br.ReadString('\n')
		bodyBuf.WriteString(l)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Document{}, err
		}
	}

	d := Document{
		Frontmatter: map[string]any{},
		Body:        strings.TrimPrefix(bodyBuf.String(), "\n"),
	}
	if hasFM {
		m := map[string]any{}
		if err := yaml.Unmarshal([]byte(fmBuf.String()), &m); err != nil {
			return Document{}, err
		}
		d.Frontmatter = m
	}
	return d, nil
}
