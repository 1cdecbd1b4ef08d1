package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryBackend struct {
	keys  []string
	types []string
	data  [][]byte
	err   error
}

func (m *memoryBackend) Put(_ context.Context, key, contentType string, data []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.keys = append(m.keys, key)
	m.types = append(m.types, contentType)
	m.data = append(m.data, data)
	return "https://cdn.example.com/" + key, nil
}

func pngOfWidth(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestSanitizeFolder(t *testing.T) {
	cases := map[string]string{
		"":                "cars",
		"cars":            "cars",
		"Cars/2024":       "cars/2024",
		"../../etc":       "etc",
		"my folder/ a b ": "my-folder/a-b",
		"///":             "cars",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeFolder(in), in)
	}
}

func TestUploaderNamesObjects(t *testing.T) {
	backend := &memoryBackend{}
	u := NewUploader(backend, 0)

	obj, err := u.Upload(context.Background(), "", File{Name: "Front.JPG", ContentType: "application/octet-stream", Data: []byte("raw")})
	require.NoError(t, err)

	assert.Equal(t, "Front.JPG", obj.Name)
	assert.True(t, strings.HasPrefix(obj.Path, "cars/"))
	assert.True(t, strings.HasSuffix(obj.Path, ".jpg"))
	assert.Len(t, strings.TrimSuffix(strings.TrimPrefix(obj.Path, "cars/"), ".jpg"), 36)
	assert.Equal(t, "https://cdn.example.com/"+obj.Path, obj.URL)
	assert.Equal(t, []byte("raw"), backend.data[0])
}

func TestUploaderDownscalesWideImages(t *testing.T) {
	backend := &memoryBackend{}
	u := NewUploader(backend, 100)

	_, err := u.Upload(context.Background(), "cars", File{Name: "wide.png", ContentType: "image/png", Data: pngOfWidth(t, 400, 200)})
	require.NoError(t, err)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(backend.data[0]))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
	assert.Equal(t, "image/png", backend.types[0])
}

func TestDownscaleKeepsSmallAndNonImages(t *testing.T) {
	small := pngOfWidth(t, 50, 10)
	out, ct, err := Downscale(small, "image/png", 100)
	require.NoError(t, err)
	assert.Equal(t, small, out)
	assert.Equal(t, "image/png", ct)

	out, ct, err = Downscale([]byte("%PDF-1.4"), "application/pdf", 100)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), out)
	assert.Equal(t, "application/pdf", ct)
}

func TestUploaderWrapsBackendErrors(t *testing.T) {
	u := NewUploader(&memoryBackend{err: errors.New("boom")}, 0)
	_, err := u.Upload(context.Background(), "cars", File{Name: "a.png", Data: []byte("x")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a.png")

	var nilUploader *Uploader
	_, err = nilUploader.Upload(context.Background(), "cars", File{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSupabasePut(t *testing.T) {
	var gotPath, gotAuth, gotKey, gotUpsert, gotType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.Header.Get("apikey")
		gotUpsert = r.Header.Get("x-upsert")
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"Key":"cars/a.png"}`))
	}))
	defer srv.Close()

	s := NewSupabase(srv.URL+"/", "service-key", "media")
	url, err := s.Put(context.Background(), "cars/a.png", "image/png", []byte("img"))
	require.NoError(t, err)

	assert.Equal(t, "/storage/v1/object/media/cars/a.png", gotPath)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "service-key", gotKey)
	assert.Equal(t, "true", gotUpsert)
	assert.Equal(t, "image/png", gotType)
	assert.Equal(t, []byte("img"), gotBody)
	assert.Equal(t, srv.URL+"/storage/v1/object/public/media/cars/a.png", url)
}

func TestSupabasePutError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"statusCode":"404","error":"Not found","message":"Bucket not found"}`))
	}))
	defer srv.Close()

	s := NewSupabase(srv.URL, "k", "missing")
	_, err := s.Put(context.Background(), "cars/a.png", "image/png", []byte("img"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bucket not found")
}

func TestSupabaseConcurrentPut(t *testing.T) {
	var mu sync.Mutex
	types := map[string]string{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		types[r.URL.Path] = r.Header.Get("Content-Type")
		mu.Unlock()
		_, _ = w.Write([]byte(`{"Key":"ok"}`))
	}))
	defer srv.Close()

	s := NewSupabase(srv.URL, "k", "media")
	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			contentType := "image/png"
			if i%2 == 1 {
				contentType = "image/jpeg"
			}
			_, err := s.Put(context.Background(), fmt.Sprintf("cars/%d", i), contentType, []byte("img"))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	require.Len(t, types, 6)
	assert.Equal(t, "image/png", types["/storage/v1/object/media/cars/0"])
	assert.Equal(t, "image/jpeg", types["/storage/v1/object/media/cars/1"])
}

func TestSupabaseCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSupabase("http://127.0.0.1:1", "k", "media").Put(ctx, "cars/a.png", "image/png", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestS3PublicURL(t *testing.T) {
	s := &S3{opts: S3Options{Bucket: "media", Region: "eu-central-1"}}
	assert.Equal(t, "https://media.s3.eu-central-1.amazonaws.com/cars/a.png", s.PublicURL("cars/a.png"))

	s.opts.Endpoint = "http://minio:9000/"
	assert.Equal(t, "http://minio:9000/media/cars/a.png", s.PublicURL("cars/a.png"))

	s.opts.PublicBaseURL = "https://img.example.com/"
	assert.Equal(t, "https://img.example.com/cars/a.png", s.PublicURL("cars/a.png"))
}

func TestS3PutAgainstCompatibleEndpoint(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = io.Copy(io.Discard, r.Body)
		w.Header().Set("ETag", `"abc"`)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s, err := NewS3(context.Background(), S3Options{
		Endpoint:        srv.URL,
		Region:          "us-east-1",
		Bucket:          "media",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
	})
	require.NoError(t, err)

	url, err := s.Put(context.Background(), "cars/a.png", "image/png", []byte("img"))
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/media/cars/a.png", gotPath)
	assert.Equal(t, srv.URL+"/media/cars/a.png", url)
}
