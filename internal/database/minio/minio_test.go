package minio

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"piercing-service/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	body   string
}

type fakeS3 struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{r.Method, r.URL.Path, string(body)})
	status := f.status
	f.mu.Unlock()

	if status == http.StatusForbidden {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(status)
		if r.Method != http.MethodHead {
			io.WriteString(w, `<Error><Code>AccessDenied</Code><Message>Access Denied.</Message></Error>`)
		}
		return
	}
	if r.Method == http.MethodPut {
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
	}
	if r.Method == http.MethodDelete {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func newTestMinioClient(t *testing.T, s3 *fakeS3) *MinioClient {
	t.Helper()
	srv := httptest.NewServer(s3)
	t.Cleanup(srv.Close)

	client, err := minio.New(strings.TrimPrefix(srv.URL, "http://"), &minio.Options{
		Creds:  credentials.NewStaticV4("access", "secret", ""),
		Region: "us-east-1",
	})
	require.NoError(t, err)
	return &MinioClient{
		client: client,
		config: config.MinioConfig{MinioResourceURL: srv.URL + "/"},
	}
}

func (f *fakeS3) last() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func TestStoreDocument_UploadsDecodedPayload(t *testing.T) {
	s3 := &fakeS3{}
	mc := newTestMinioClient(t, s3)

	url, err := mc.StoreDocument(context.Background(), Storage.Signatures, "c1/client", "data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(url, "/release-signatures/c1/client"), url)
	req := s3.last()
	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, "/release-signatures/c1/client", req.path)
	assert.Contains(t, req.body, "hello")
}

func TestRemoveDocument(t *testing.T) {
	s3 := &fakeS3{}
	mc := newTestMinioClient(t, s3)

	require.NoError(t, mc.RemoveDocument(context.Background(), Storage.IDPhotos, "c1/parent"))

	req := s3.last()
	assert.Equal(t, http.MethodDelete, req.method)
	assert.Equal(t, "/release-id-photos/c1/parent", req.path)
}

func TestRemoveDocument_Denied(t *testing.T) {
	s3 := &fakeS3{status: http.StatusForbidden}
	mc := newTestMinioClient(t, s3)

	err := mc.RemoveDocument(context.Background(), Storage.IDPhotos, "c1/parent")
	assert.ErrorContains(t, err, "failed to remove c1/parent")
}

func TestPing(t *testing.T) {
	s3 := &fakeS3{}
	mc := newTestMinioClient(t, s3)
	require.NoError(t, mc.Ping(context.Background()))
	assert.Equal(t, http.MethodHead, s3.last().method)

	s3.status = http.StatusForbidden
	assert.Error(t, mc.Ping(context.Background()))
}
