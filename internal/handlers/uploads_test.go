package handlers

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/mail"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/service"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type part struct {
	name        string
	contentType string
	data        []byte
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func multipartRequest(t *testing.T, folder string, parts ...part) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if folder != "" {
		require.NoError(t, w.WriteField("folder", folder))
	}
	for _, p := range parts {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", `form-data; name="files"; filename="`+p.name+`"`)
		if p.contentType != "" {
			h.Set("Content-Type", p.contentType)
		}
		fw, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = fw.Write(p.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads/cars", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("X-API-KEY", testAPIKey)
	return req
}

func TestUploadCarImages(t *testing.T) {
	s := newTestServer(t, &mail.LogTransport{})
	img := tinyPNG(t)

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, multipartRequest(t, "Cars/Toyota Corolla",
		part{name: "front.png", contentType: "image/png", data: img},
		part{name: "side.png", data: img},
	))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var objects []storage.Object
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &objects))
	require.Len(t, objects, 2)
	assert.Equal(t, "front.png", objects[0].Name)
	assert.Equal(t, "side.png", objects[1].Name)
	for _, o := range objects {
		assert.True(t, strings.HasPrefix(o.Path, "cars/toyota-corolla/"), o.Path)
		assert.True(t, strings.HasSuffix(o.Path, ".png"), o.Path)
		assert.Equal(t, "https://cdn.example.com/"+o.Path, o.URL)
	}
	assert.Len(t, s.backend.keys, 2)
}

func TestUploadRejectsBadInput(t *testing.T) {
	img := tinyPNG(t)

	t.Run("too many files", func(t *testing.T) {
		s := newTestServer(t, &mail.LogTransport{})
		rec := httptest.NewRecorder()
		parts := make([]part, 4)
		for i := range parts {
			parts[i] = part{name: "a.png", contentType: "image/png", data: img}
		}
		s.router.ServeHTTP(rec, multipartRequest(t, "", parts...))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), service.MsgTooManyImage)
		assert.Empty(t, s.backend.keys)
	})

	t.Run("no files", func(t *testing.T) {
		s := newTestServer(t, &mail.LogTransport{})
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, multipartRequest(t, "cars"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), MsgUploadNoFiles)
	})

	t.Run("not an image", func(t *testing.T) {
		s := newTestServer(t, &mail.LogTransport{})
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, multipartRequest(t, "", part{name: "notes.txt", data: []byte("hello")}))
		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("not multipart", func(t *testing.T) {
		s := newTestServer(t, &mail.LogTransport{})
		req := httptest.NewRequest(http.MethodPost, "/api/uploads/cars", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-KEY", testAPIKey)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUploadWithoutStorage(t *testing.T) {
	h := NewUploadHandler(nil)
	rec := httptest.NewRecorder()
	h.HandleCarImages(rec, multipartRequest(t, "", part{name: "a.png", contentType: "image/png", data: tinyPNG(t)}))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), MsgStorageNotConfigured)
}

func TestUploadRateLimit(t *testing.T) {
	s := newTestServer(t, &mail.LogTransport{})
	img := tinyPNG(t)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, multipartRequest(t, "", part{name: "a.png", contentType: "image/png", data: img}))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiterIsPerClient(t *testing.T) {
	rl := NewRateLimiter(1)
	assert.True(t, rl.allow("10.0.0.1"))
	assert.False(t, rl.allow("10.0.0.1"))
	assert.True(t, rl.allow("10.0.0.2"))
}
