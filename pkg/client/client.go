// Package client is a small HTTP client for the relica artifact API, used
// by relicactl and by integration tooling.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/zsoltkebel/relica/pkg/artstore"
)

type Client struct {
	baseURL  string
	username string
	password string
	http     *http.Client
}

// New creates a client for the API at baseURL.
func New(baseURL string) (*Client, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// SetBasicAuth attaches the shared credential pair to every request.
func (c *Client) SetBasicAuth(username, password string) {
	c.username = username
	c.password = password
}

func (c *Client) do(ctx context.Context, method, path string, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		payload, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, strings.TrimSpace(string(payload)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// List fetches every artifact preview.
func (c *Client) List(ctx context.Context) ([]artstore.Preview, error) {
	var resp struct {
		Artifacts []artstore.Preview `json:"artifacts"`
	}
	if err := c.do(ctx, http.MethodGet, "/artifacts", "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Artifacts, nil
}

// Get fetches the full aggregated view of one artifact.
func (c *Client) Get(ctx context.Context, id string) (map[string]any, error) {
	var resp struct {
		Artifact map[string]any `json:"artifact"`
	}
	if err := c.do(ctx, http.MethodGet, "/artifacts/"+id, "", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Artifact, nil
}

// Create uploads a new artifact from an optional metadata JSON string and
// local image paths. Returns the new artifact identifier.
func (c *Client) Create(ctx context.Context, metadataJSON string, imagePaths []string) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if metadataJSON != "" {
		if err := w.WriteField("metadata", metadataJSON); err != nil {
			return "", err
		}
	}
	for _, path := range imagePaths {
		if err := attachFile(w, "images", path); err != nil {
			return "", err
		}
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	var resp struct {
		ArtifactID string `json:"artifact_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/artifacts", w.FormDataContentType(), &buf, &resp); err != nil {
		return "", err
	}
	return resp.ArtifactID, nil
}

// Delete removes an artifact and everything under it.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/artifacts/"+id, "", nil, nil)
}

// Archive asks the server to export the artifact's tree to its S3 target.
// Returns the number of files uploaded.
func (c *Client) Archive(ctx context.Context, id string) (int, error) {
	var resp struct {
		Files int `json:"files"`
	}
	if err := c.do(ctx, http.MethodPost, "/artifacts/"+id+"/archive", "", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Files, nil
}

func attachFile(w *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	part, err := w.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return err
	}
	_, err = io.Copy(part, f)
	return err
}
