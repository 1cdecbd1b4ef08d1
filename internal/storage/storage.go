// Package storage uploads car images to object storage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/adamb00/CAR-RENTER-ADMIN-sub000/internal/config"
	"github.com/google/uuid"
)

var ErrNotConfigured = errors.New("storage not configured")

// Backend stores one object and returns its public URL.
type Backend interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// New picks the backend named by STORAGE_DRIVER.
func New(ctx context.Context, cfg *config.Config) (Backend, error) {
	switch strings.ToLower(cfg.StorageDriver) {
	case "", "supabase":
		if cfg.SupabaseURL == "" || cfg.SupabaseServiceRoleKey == "" {
			return nil, ErrNotConfigured
		}
		return NewSupabase(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, cfg.SupabaseStorageBucket), nil
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, ErrNotConfigured
		}
		return NewS3(ctx, S3Options{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			PublicBaseURL:   cfg.S3PublicBaseURL,
		})
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

// File is one uploaded file as received from the client.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Object describes a stored file.
type Object struct {
	Name string `json:"name"`
	Path string `json:"path"`
	URL  string `json:"url"`
}

const DefaultFolder = "cars"

// Uploader names, downscales and stores files.
type Uploader struct {
	backend  Backend
	maxWidth uint
}

func NewUploader(backend Backend, maxWidth uint) *Uploader {
	return &Uploader{backend: backend, maxWidth: maxWidth}
}

func (u *Uploader) Upload(ctx context.Context, folder string, f File) (Object, error) {
	if u == nil || u.backend == nil {
		return Object{}, ErrNotConfigured
	}

	data, contentType, err := Downscale(f.Data, f.ContentType, u.maxWidth)
	if err != nil {
		return Object{}, err
	}

	key := path.Join(SanitizeFolder(folder), uuid.NewString()+extension(f.Name, contentType))
	url, err := u.backend.Put(ctx, key, contentType, data)
	if err != nil {
		return Object{}, fmt.Errorf("storing %s: %w", f.Name, err)
	}
	return Object{Name: f.Name, Path: key, URL: url}, nil
}

var unsafeFolderChars = regexp.MustCompile(`[^a-z0-9_-]+`)

// SanitizeFolder reduces a client supplied folder to slash separated
// segments of [a-z0-9_-]. Empty results fall back to DefaultFolder.
func SanitizeFolder(folder string) string {
	var parts []string
	for _, seg := range strings.Split(strings.ToLower(folder), "/") {
		seg = unsafeFolderChars.ReplaceAllString(seg, "-")
		seg = strings.Trim(seg, "-")
		if seg != "" {
			parts = append(parts, seg)
		}
	}
	if len(parts) == 0 {
		return DefaultFolder
	}
	return strings.Join(parts, "/")
}

func extension(name, contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	}
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) > 10 || strings.ContainsAny(ext, `/\`) {
		return ""
	}
	return ext
}
