package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	storage_go "github.com/supabase-community/storage-go"
)

// Supabase stores objects in a Supabase Storage bucket with the service role key.
type Supabase struct {
	bucket string
	client *storage_go.Client

	// the client keeps upload options in headers shared by every request
	mu sync.Mutex
}

func NewSupabase(baseURL, serviceRoleKey, bucket string) *Supabase {
	endpoint := strings.TrimRight(baseURL, "/") + "/storage/v1"
	return &Supabase{
		bucket: bucket,
		client: storage_go.NewClient(endpoint, serviceRoleKey, map[string]string{"apikey": serviceRoleKey}),
	}
}

func (s *Supabase) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	upsert := true

	s.mu.Lock()
	_, err := s.client.UploadFile(s.bucket, key, bytes.NewReader(data), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	s.mu.Unlock()
	if err != nil {
		return "", fmt.Errorf("supabase storage: %w", err)
	}
	return s.PublicURL(key), nil
}

func (s *Supabase) PublicURL(key string) string {
	return s.client.GetPublicUrl(s.bucket, key).SignedURL
}
