package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"club-site-go/internal/config"
)

// SupabaseStorage talks to the Supabase storage HTTP API directly, the
// same way the auth middleware talks to /auth/v1/user.
type SupabaseStorage struct {
	baseURL string
	apiKey  string
	bucket  string
	client  *http.Client
}

func NewSupabase(cfg config.SupabaseConfig, storageCfg config.StorageConfig) (*SupabaseStorage, error) {
	baseURL := strings.TrimRight(cfg.URL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("supabase url is required for supabase storage")
	}
	apiKey := cfg.ServiceKey
	if apiKey == "" {
		apiKey = cfg.PublishableKey
	}
	if apiKey == "" {
		return nil, fmt.Errorf("supabase key is required for supabase storage")
	}

	timeout := storageCfg.UploadTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &SupabaseStorage{
		baseURL: baseURL,
		apiKey:  apiKey,
		bucket:  storageCfg.Bucket,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

func (s *SupabaseStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("apikey", s.apiKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		message, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("upload %s: status %d: %s", key, resp.StatusCode, strings.TrimSpace(string(message)))
	}

	return s.PublicURL(key), nil
}

// PublicURL resolves the bucket's public URL for a key; records persist
// this URL, never the object id.
func (s *SupabaseStorage) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, key)
}
