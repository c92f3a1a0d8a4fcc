package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBucket is a minimal path-style S3 endpoint covering the calls
// S3Storage issues: PutObject, GetObject, HeadObject, DeleteObject.
type fakeBucket struct {
	mu      sync.Mutex
	objects map[string]fakeObject
}

type fakeObject struct {
	data        []byte
	contentType string
}

func (b *fakeBucket) handler(bucket string) http.HandlerFunc {
	prefix := "/" + bucket + "/"
	return func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(r.URL.Path, prefix)
		b.mu.Lock()
		defer b.mu.Unlock()

		switch r.Method {
		case http.MethodPut:
			data, err := io.ReadAll(r.Body)
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			b.objects[key] = fakeObject{data: data, contentType: r.Header.Get("Content-Type")}
			w.Header().Set("ETag", `"fake-etag"`)
		case http.MethodHead:
			obj, ok := b.objects[key]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.Header().Set("Content-Type", obj.contentType)
			w.Header().Set("Content-Length", strconv.Itoa(len(obj.data)))
		case http.MethodGet:
			obj, ok := b.objects[key]
			if !ok {
				w.Header().Set("Content-Type", "application/xml")
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`<?xml version="1.0"?><Error><Code>NoSuchKey</Code><Message>The specified key does not exist.</Message></Error>`))
				return
			}
			w.Header().Set("Content-Type", obj.contentType)
			w.Write(obj.data)
		case http.MethodDelete:
			delete(b.objects, key)
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotImplemented)
		}
	}
}

func newTestS3(t *testing.T) *S3Storage {
	t.Helper()

	bucket := &fakeBucket{objects: map[string]fakeObject{}}
	server := httptest.NewServer(bucket.handler("portfolio-test"))
	t.Cleanup(server.Close)

	store, err := NewS3Storage(Config{
		Bucket:    "portfolio-test",
		Region:    "us-east-1",
		AccessKey: "test",
		SecretKey: "test",
		Endpoint:  server.URL,
		BaseURL:   server.URL + "/portfolio-test",
		UseSSL:    false,
	})
	require.NoError(t, err)
	return store
}

func TestS3StorageRoundTrip(t *testing.T) {
	store := newTestS3(t)
	ctx := context.Background()
	content := []byte("png-bytes-logo")

	path, err := store.Save(ctx, bytes.NewReader(content), "logo.png", "skills")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "skills/"))
	assert.True(t, strings.HasSuffix(path, "_logo.png"))

	obj, err := store.Get(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, content, obj.Data)
	assert.Equal(t, "image/png", obj.MimeType)
	assert.Equal(t, filepath.Base(path), obj.Filename)
	assert.Equal(t, int64(len(content)), obj.Size)

	exists, err := store.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestS3StorageGetMissing(t *testing.T) {
	store := newTestS3(t)

	_, err := store.Get(context.Background(), "skills/does-not-exist.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestS3StorageDeleteRemovesObject(t *testing.T) {
	store := newTestS3(t)
	ctx := context.Background()

	path, err := store.Save(ctx, strings.NewReader("doc"), "cv.pdf", "cvs")
	require.NoError(t, err)

	removed, err := store.Delete(ctx, path)
	require.NoError(t, err)
	assert.True(t, removed)

	exists, err := store.Exists(ctx, path)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestS3StorageDeleteMissingReportsFalse(t *testing.T) {
	store := newTestS3(t)

	removed, err := store.Delete(context.Background(), "cvs/already-gone.pdf")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestS3StorageResolve(t *testing.T) {
	store := newTestS3(t)
	ctx := context.Background()

	path, err := store.Save(ctx, strings.NewReader("cover"), "cover.jpg", "categories")
	require.NoError(t, err)

	url, err := store.Resolve(ctx, path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, "/"+path))

	_, err = store.Resolve(ctx, "categories/missing.jpg")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNewS3StorageRequiresBucket(t *testing.T) {
	_, err := NewS3Storage(Config{Region: "us-east-1"})
	assert.Error(t, err)
}
