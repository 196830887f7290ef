package httpclient

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/meta.json":
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			_, _ = w.Write([]byte(`{"name":"Leaf #1","image":"https://example.com/1.png"}`))
		case "/moved":
			http.Redirect(w, r, "/meta.json", http.StatusFound)
		case "/image.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	client := New(Config{})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		resp, err := client.Fetch(context.Background(), srv.URL+"/meta.json", RequestOptions{})
		require.NoError(t, err)
		require.True(t, resp.IsSuccess())

		var out map[string]string
		require.NoError(t, resp.UnmarshalBody(&out))
		assert.Equal(t, "Leaf #1", out["name"])
	})
	t.Run("redirect", func(t *testing.T) {
		t.Parallel()
		resp, err := client.Fetch(context.Background(), srv.URL+"/moved", RequestOptions{})
		require.NoError(t, err)
		require.True(t, resp.IsSuccess())

		var out map[string]string
		require.NoError(t, resp.UnmarshalBody(&out))
		assert.Equal(t, "Leaf #1", out["name"])
	})
	t.Run("unsupported content type", func(t *testing.T) {
		t.Parallel()
		resp, err := client.Fetch(context.Background(), srv.URL+"/image.png", RequestOptions{})
		require.NoError(t, err)
		var out map[string]any
		assert.True(t, errors.Is(resp.UnmarshalBody(&out), errs.Unsupported))
	})
	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		resp, err := client.Fetch(context.Background(), srv.URL+"/missing", RequestOptions{})
		require.NoError(t, err)
		assert.False(t, resp.IsSuccess())
	})
	t.Run("invalid url", func(t *testing.T) {
		t.Parallel()
		for _, u := range []string{"", "ipfs://bafy", "not a url", "https://"} {
			_, err := client.Fetch(context.Background(), u, RequestOptions{})
			assert.True(t, errors.Is(err, errs.InvalidArgument), u)
		}
	})
}

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestFetchBodyLimit(t *testing.T) {
	t.Parallel()
	small := `{"name":"Leaf #2"}`
	huge := `{"name":"` + strings.Repeat("a", 64<<10) + `"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/small.json.gz":
			w.Header().Set("Content-Encoding", "gzip")
			_, _ = w.Write(gzipped(t, small))
		case "/bomb.json.gz":
			w.Header().Set("Content-Encoding", "gzip")
			_, _ = w.Write(gzipped(t, huge))
		case "/huge.json":
			_, _ = w.Write([]byte(huge))
		case "/packed.json":
			w.Header().Set("Content-Encoding", "compress")
			_, _ = w.Write([]byte(small))
		}
	}))
	t.Cleanup(srv.Close)

	client := New(Config{MaxBodySize: 1 << 10})

	t.Run("compressed body within limit", func(t *testing.T) {
		t.Parallel()
		resp, err := client.Fetch(context.Background(), srv.URL+"/small.json.gz", RequestOptions{})
		require.NoError(t, err)

		var out map[string]string
		require.NoError(t, resp.UnmarshalBody(&out))
		assert.Equal(t, "Leaf #2", out["name"])
	})
	t.Run("compressed body expands past limit", func(t *testing.T) {
		t.Parallel()
		resp, err := client.Fetch(context.Background(), srv.URL+"/bomb.json.gz", RequestOptions{})
		require.NoError(t, err)
		require.Less(t, len(resp.Body()), 1<<10, "the transfer itself is small")

		_, err = resp.DecodedBody(1 << 10)
		assert.ErrorIs(t, err, ErrBodyTooLarge)
		var out map[string]string
		assert.ErrorIs(t, resp.UnmarshalBody(&out), ErrBodyTooLarge)
	})
	t.Run("plain body past limit", func(t *testing.T) {
		t.Parallel()
		_, err := client.Fetch(context.Background(), srv.URL+"/huge.json", RequestOptions{})
		assert.ErrorIs(t, err, ErrBodyTooLarge)
	})
	t.Run("unknown encoding", func(t *testing.T) {
		t.Parallel()
		resp, err := client.Fetch(context.Background(), srv.URL+"/packed.json", RequestOptions{})
		require.NoError(t, err)
		_, err = resp.DecodedBody(0)
		assert.ErrorIs(t, err, errs.Unsupported)
	})
}
