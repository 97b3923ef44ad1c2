package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/highlight-flow/internal/config"
	"github.com/nguyentantai21042004/highlight-flow/internal/logger"
	"github.com/nguyentantai21042004/highlight-flow/internal/transcript"
)

func TestParseVideoID(t *testing.T) {
	tests := []struct {
		url     string
		want    string
		wantErr bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", false},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ?start=10", "dQw4w9WgXcQ", false},
		{"https://www.youtube.com/watch?v=short", "", true},
		{"not a url", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := ParseVideoID(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateDocID(t *testing.T) {
	assert.NoError(t, ValidateDocID("66e93041a3c9215abac21587"))
	assert.NoError(t, ValidateDocID("lecture_01"))
	assert.ErrorIs(t, ValidateDocID(""), ErrInvalidInput)
	assert.ErrorIs(t, ValidateDocID("../etc/passwd"), ErrInvalidInput)
	assert.ErrorIs(t, ValidateDocID("a b"), ErrInvalidInput)
}

func TestDocumentTranscript(t *testing.T) {
	start, dur := 1.0, 2.0
	chunks := []transcript.RawChunk{{Text: "hello", Offset: &start, Duration: &dur}}

	got, err := NewDocument("doc", chunks).Transcript()
	require.NoError(t, err)
	assert.Equal(t, chunks, got)

	_, err = Document{ID: "bare"}.Transcript()
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Document{ID: "empty", YouTubeMetadata: &YouTubeMetadata{}}.Transcript()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/transcripts/dQw4w9WgXcQ":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"text":"Cats are mammals.","start":0,"duration":2},{"text":"Dogs are mammals too.","start":2,"duration":2}]`))
		case "/transcripts/brokenjson0":
			w.Write([]byte(`{"text":`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL+"/", 100, 5, time.Second, logger.Discard())

	chunks, err := f.Fetch(context.Background(), "dQw4w9WgXcQ")
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, "Dogs are mammals too.", chunks[1].Text)
	require.NotNil(t, chunks[1].Start)
	assert.Equal(t, 2.0, *chunks[1].Start)
	assert.Nil(t, chunks[1].Offset)

	_, err = f.Fetch(context.Background(), "missing0000")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.Fetch(context.Background(), "brokenjson0")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPFetcherUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	f := NewHTTPFetcher(addr, 100, 1, time.Second, logger.Discard())
	_, err := f.Fetch(context.Background(), "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, ErrNotFound)
}

type fakeExecutor struct {
	out  string
	err  error
	dir  string
	name string
	args []string
}

func (e *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	e.name, e.args = name, args
	return e.out, e.err
}

func (e *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	e.dir = dir
	return e.Execute(ctx, name, args...)
}

func TestCommandFetcher(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		dir      string
		wantArgs []string
	}{
		{"placeholder", []string{"--id", "{id}", "--json"}, "", []string{"--id", "abc", "--json"}},
		{"appended", []string{"--json"}, "", []string{"--json", "abc"}},
		{"in dir", nil, "/tmp/work", []string{"abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &fakeExecutor{out: `[{"text":"hi","start":1,"duration":1}]`}
			f := NewCommandFetcher(exec, "yt-transcript", tt.args, tt.dir, logger.Discard())

			chunks, err := f.Fetch(context.Background(), "abc")
			require.NoError(t, err)
			assert.Len(t, chunks, 1)
			assert.Equal(t, "yt-transcript", exec.name)
			assert.Equal(t, tt.wantArgs, exec.args)
			assert.Equal(t, tt.dir, exec.dir)
		})
	}
}

func TestCommandFetcherFailure(t *testing.T) {
	f := NewCommandFetcher(&fakeExecutor{err: errors.New("exit status 1")}, "yt", nil, "", logger.Discard())
	_, err := f.Fetch(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrNotFound)

	f = NewCommandFetcher(&fakeExecutor{out: "no transcript"}, "yt", nil, "", logger.Discard())
	_, err = f.Fetch(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrNotFound)
}

func testStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	id := "doc_" + uuid.NewString()[:8]

	_, err := s.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	offset, dur := 3.5, 1.5
	doc := NewDocument(id, []transcript.RawChunk{{Text: "stored", Offset: &offset, Duration: &dur}})
	doc.Title = "Lecture"
	require.NoError(t, s.Put(ctx, doc))

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Lecture", got.Title)
	chunks, err := got.Transcript()
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, 3.5, *chunks[0].Offset)

	_, err = s.Get(ctx, "../escape")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, s.Put(ctx, Document{ID: "a/b"}), ErrInvalidInput)
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "documents")
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	defer s.Close()

	testStore(t, s)
}

func TestFileStoreLegacyDocument(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	body := `{"youtube_metadata":{"transcriptions":[{"transcription":[{"text":"a","offset":0,"duration":1}]}]}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "66e93041a3c9215abac21587.json"), []byte(body), 0644))

	doc, err := s.Get(context.Background(), "66e93041a3c9215abac21587")
	require.NoError(t, err)
	assert.Equal(t, "66e93041a3c9215abac21587", doc.ID)
	chunks, err := doc.Transcript()
	require.NoError(t, err)
	assert.Len(t, chunks, 1)
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("HIGHLIGHT_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("HIGHLIGHT_TEST_REDIS_ADDR not set")
	}

	s, err := NewRedisStore(context.Background(), addr, "", 0, "highlight-test:")
	require.NoError(t, err)
	defer s.Close()

	testStore(t, s)
}

func TestNewFetcher(t *testing.T) {
	f, err := NewFetcher(config.FetcherConfig{Mode: "http"}, logger.Discard())
	require.NoError(t, err)
	assert.Nil(t, f)

	f, err = NewFetcher(config.FetcherConfig{Mode: "http", BaseURL: "http://localhost:1", RatePerSecond: 1, Burst: 1}, logger.Discard())
	require.NoError(t, err)
	assert.NotNil(t, f)

	f, err = NewFetcher(config.FetcherConfig{Mode: "command", Binary: "yt"}, logger.Discard())
	require.NoError(t, err)
	assert.NotNil(t, f)

	_, err = NewFetcher(config.FetcherConfig{Mode: "carrier-pigeon"}, logger.Discard())
	assert.Error(t, err)
}

func TestNewStore(t *testing.T) {
	s, err := NewStore(context.Background(), config.StoreConfig{Backend: "file", Dir: t.TempDir()})
	require.NoError(t, err)
	assert.NoError(t, s.Close())

	_, err = NewStore(context.Background(), config.StoreConfig{Backend: "mongo"})
	assert.Error(t, err)
}
