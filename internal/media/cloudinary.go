package media

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"strings"
)

// Cloudinary implements Uploader against Cloudinary's unsigned upload
// API. Uploads go through an upload preset; deletes use the destroy
// endpoint with the public id derived from the asset URL.
type Cloudinary struct {
	CloudName    string
	UploadPreset string
	APIKey       string

	// HTTPClient defaults to http.DefaultClient. No request timeout is
	// set here; deadlines come from the caller's context.
	HTTPClient *http.Client
}

// NewCloudinaryFromEnv builds a client from CLOUDINARY_* variables.
func NewCloudinaryFromEnv() *Cloudinary {
	return &Cloudinary{
		CloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		UploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
		APIKey:       os.Getenv("CLOUDINARY_API_KEY"),
	}
}

func (c *Cloudinary) client() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// Upload sends the blob and returns its public URL.
func (c *Cloudinary) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	var body strings.Builder
	w := multipart.NewWriter(&body)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", err
	}
	if err := w.WriteField("upload_preset", c.UploadPreset); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/upload", c.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body.String()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.client().Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("media upload failed with status %d", resp.StatusCode)
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	return result.SecureURL, nil
}

// Delete destroys the asset behind publicURL. A URL we cannot derive a
// public id from is silently ignored.
func (c *Cloudinary) Delete(ctx context.Context, publicURL string) error {
	publicID := publicIDFromURL(publicURL)
	if publicID == "" {
		return nil
	}

	var body strings.Builder
	w := multipart.NewWriter(&body)
	fields := map[string]string{
		"public_id":     publicID,
		"upload_preset": c.UploadPreset,
		"api_key":       c.APIKey,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/destroy", c.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body.String()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("media delete failed with status %d", resp.StatusCode)
	}
	return nil
}

// publicIDFromURL takes the last path segment of the asset URL and
// strips the extension, matching how the assets were named on upload.
func publicIDFromURL(publicURL string) string {
	base := path.Base(publicURL)
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSuffix(base, path.Ext(base))
}
