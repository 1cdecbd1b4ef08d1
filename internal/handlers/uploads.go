package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/logger"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/service"
	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/storage"
	"golang.org/x/sync/errgroup"
)

const (
	maxUploadFiles = 3
	maxUploadBytes = 20 << 20
)

type UploadHandler struct {
	uploader *storage.Uploader
}

func NewUploadHandler(uploader *storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

type uploadError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func uploadFailed(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, uploadError{Message: msg})
}

// HandleCarImages stores up to three images from the "files" form field
// under the optional "folder" and returns their public URLs.
func (h *UploadHandler) HandleCarImages(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		uploadFailed(w, http.StatusBadRequest, MsgUploadInvalid)
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	switch {
	case len(headers) == 0:
		uploadFailed(w, http.StatusBadRequest, MsgUploadNoFiles)
		return
	case len(headers) > maxUploadFiles:
		uploadFailed(w, http.StatusBadRequest, service.MsgTooManyImage)
		return
	}

	files := make([]storage.File, 0, len(headers))
	for _, fh := range headers {
		f, err := readPart(fh)
		if err != nil {
			uploadFailed(w, http.StatusBadRequest, MsgUploadInvalid)
			return
		}
		if !strings.HasPrefix(f.ContentType, "image/") {
			uploadFailed(w, http.StatusUnsupportedMediaType, MsgUploadNotImage)
			return
		}
		files = append(files, f)
	}

	folder := r.FormValue("folder")
	objects := make([]storage.Object, len(files))
	g, ctx := errgroup.WithContext(r.Context())
	for i, f := range files {
		g.Go(func() error {
			obj, err := h.uploader.Upload(ctx, folder, f)
			objects[i] = obj
			return err
		})
	}
	if err := g.Wait(); err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			uploadFailed(w, http.StatusServiceUnavailable, MsgStorageNotConfigured)
			return
		}
		logger.ActionFailed(r.Context(), "upload-car-images", err)
		uploadFailed(w, http.StatusBadGateway, service.MsgUnexpected)
		return
	}

	writeJSON(w, http.StatusOK, objects)
}

func readPart(fh *multipart.FileHeader) (storage.File, error) {
	src, err := fh.Open()
	if err != nil {
		return storage.File{}, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return storage.File{}, err
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}
	return storage.File{Name: fh.Filename, ContentType: contentType, Data: data}, nil
}
