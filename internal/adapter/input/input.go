// Package input reads phrases to add from files or standard input.
package input

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/animo/internal/phrase"
)

const maxSize = 10 * 1024 * 1024 // 10MB max

var utf8BOM = []byte("\xef\xbb\xbf")

// Reader produces phrase texts from a source.
type Reader interface {
	// Name returns the source identifier (e.g., "stdin", a file path).
	Name() string

	// Read returns the phrase texts in source order.
	Read(ctx context.Context) ([]string, error)
}

// PhraseReader reads phrases from an io.Reader. It accepts:
//  1. a JSON or YAML list of strings
//  2. a JSON or YAML list of objects with a "text" field, as written by
//     `animo phrases --format json|yaml`
//  3. plain text, one phrase per line
type PhraseReader struct {
	name   string
	reader io.Reader
}

// NewStdinReader creates a PhraseReader reading from os.Stdin.
func NewStdinReader() *PhraseReader {
	return &PhraseReader{name: "stdin", reader: os.Stdin}
}

// NewPhraseReader creates a PhraseReader with a custom reader.
func NewPhraseReader(name string, r io.Reader) *PhraseReader {
	return &PhraseReader{name: name, reader: r}
}

// Open returns a reader for path, or for standard input when path is "-".
// The returned close function must be called when done.
func Open(path string) (*PhraseReader, func() error, error) {
	if path == "-" {
		return NewStdinReader(), func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &ReadError{Source: path, Message: "failed to open phrase file", Err: err}
	}
	return NewPhraseReader(path, f), f.Close, nil
}

// Name returns the source identifier.
func (r *PhraseReader) Name() string {
	return r.name
}

// Read reads all phrases. Blank lines and blank entries are kept out; other
// validation is left to the phrase list. Read returns ctx.Err() as soon as ctx
// is done, even while the underlying reader is still blocked.
func (r *PhraseReader) Read(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := r.readAll(ctx)
	if err != nil {
		return nil, err
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		if texts, ok := parseJSON(trimmed); ok {
			return texts, nil
		}
	}
	if bytes.HasPrefix(trimmed, []byte("- ")) {
		if texts, ok := parseYAML(trimmed); ok {
			return texts, nil
		}
	}

	return parseLines(data)
}

type readResult struct {
	data []byte
	err  error
}

// readAll reads the source in a goroutine so a blocked stdin does not outlive
// ctx. The goroutine exits once the reader returns.
func (r *PhraseReader) readAll(ctx context.Context) ([]byte, error) {
	done := make(chan readResult, 1)
	go func() {
		data, err := io.ReadAll(io.LimitReader(r.reader, maxSize))
		done <- readResult{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, &ReadError{Source: r.name, Message: "gave up reading phrases", Err: ctx.Err()}
	case res := <-done:
		if res.err != nil {
			return nil, &ReadError{Source: r.name, Message: "failed to read phrases", Err: res.err}
		}
		return res.data, nil
	}
}

// phraseEntry is the object form of a phrase.
type phraseEntry struct {
	Text string `json:"text" yaml:"text"`
}

func parseJSON(data []byte) ([]string, bool) {
	var texts []string
	if err := json.Unmarshal(data, &texts); err == nil {
		return nonBlank(texts), true
	}

	var entries []phraseEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, false
	}
	return entryTexts(entries)
}

func parseYAML(data []byte) ([]string, bool) {
	var texts []string
	if err := yaml.Unmarshal(data, &texts); err == nil {
		return nonBlank(texts), true
	}

	var entries []phraseEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, false
	}
	return entryTexts(entries)
}

func parseLines(data []byte) ([]string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), maxSize)

	var texts []string
	for scanner.Scan() {
		texts = append(texts, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nonBlank(texts), nil
}

// entryTexts reports false when a non-empty list carries no "text" values,
// which means the input only looked like objects (e.g. "- Nota: algo" lines).
func entryTexts(entries []phraseEntry) ([]string, bool) {
	texts := make([]string, 0, len(entries))
	for _, e := range entries {
		texts = append(texts, e.Text)
	}
	texts = nonBlank(texts)
	if len(entries) > 0 && len(texts) == 0 {
		return nil, false
	}
	return texts, true
}

func nonBlank(texts []string) []string {
	result := texts[:0]
	for _, t := range texts {
		if phrase.Trim(t) != "" {
			result = append(result, t)
		}
	}
	return result
}

// ReadError represents a failure to read a phrase source.
type ReadError struct {
	Source  string
	Message string
	Err     error
}

func (e *ReadError) Error() string {
	if e.Err != nil {
		return e.Source + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Source + ": " + e.Message
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
