/*
Copyright © 2025 AlphaSense Labs
SPDX-License-Identifier: Apache-2.0
*/
package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alphasense-labs/asingest/pkg/config"
	"github.com/alphasense-labs/asingest/pkg/metadata"
)

const (
	// uploadPath is appended to the ingestion base URL.
	uploadPath = "/upload-document"

	// DefaultUploadClientID identifies the upload channel to the ingestion API.
	DefaultUploadClientID = "enterprise-sync"

	// defaultTimeout bounds a single upload round trip. Large documents over
	// slow links may need WithHTTPClient to raise it.
	defaultTimeout = 5 * time.Minute
)

// Client uploads documents to the AlphaSense ingestion API. Each Upload call
// performs exactly one HTTP attempt; there is no retry, batching, or
// concurrency.
type Client struct {
	baseURL  string
	clientID string
	client   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for uploads.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.client = c
		}
	}
}

// WithUploadClientID overrides the clientId header sent with uploads.
func WithUploadClientID(id string) Option {
	return func(cl *Client) {
		if id != "" {
			cl.clientID = id
		}
	}
}

// NewClient creates an upload client for the configured ingestion endpoint.
func NewClient(cfg *config.Config, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(cfg.IngestionBaseURL, "/"),
		clientID: DefaultUploadClientID,
		client:   &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UploadRequest describes a single document upload.
type UploadRequest struct {
	// Document is the path to the primary document file. Required.
	Document string
	// Attachments are optional paths to supporting files.
	Attachments []string
	// Metadata is the document metadata object. A nil value is sent as an
	// empty JSON object.
	Metadata metadata.Object
}

// Receipt is the outcome of a successful upload.
type Receipt struct {
	DocumentID string `json:"documentId,omitempty" yaml:"documentId,omitempty"`
	Document   string `json:"document" yaml:"document"`
	RequestID  string `json:"requestId" yaml:"requestId"`
	Status     int    `json:"status" yaml:"status"`
}

// Upload sends the document, optional attachments, and metadata to the
// ingestion endpoint as a single multipart request authorized with the given
// bearer token. Missing local files fail before any network I/O. Non-2xx
// responses and transport failures surface as *UploadError.
func (c *Client) Upload(ctx context.Context, token string, req UploadRequest) (*Receipt, error) {
	if strings.TrimSpace(req.Document) == "" {
		return nil, &UploadError{Op: "upload", Err: fmt.Errorf("document path is required")}
	}

	// Verify all local files up front so a bad path never costs a network call.
	for _, path := range append([]string{req.Document}, req.Attachments...) {
		if _, err := os.Stat(path); err != nil {
			return nil, &UploadError{Op: "upload", Path: path, Err: fmt.Errorf("file not found: %w", err)}
		}
	}

	body, contentType, err := buildMultipartBody(req)
	if err != nil {
		return nil, err
	}

	requestID := uuid.New().String()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+uploadPath, body)
	if err != nil {
		return nil, &UploadError{Op: "upload", Err: err}
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Authorization", "bearer "+token)
	httpReq.Header.Set("clientId", c.clientID)
	httpReq.Header.Set("X-Request-ID", requestID)

	slog.Info("uploading document",
		"document", req.Document,
		"attachments", len(req.Attachments),
		"endpoint", c.baseURL+uploadPath,
		"requestID", requestID)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, &UploadError{Op: "upload", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UploadError{Op: "upload", StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UploadError{Op: "upload", StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	receipt := &Receipt{
		DocumentID: parseDocumentID(respBody),
		Document:   req.Document,
		RequestID:  requestID,
		Status:     resp.StatusCode,
	}

	slog.Info("document uploaded",
		"documentID", receipt.DocumentID,
		"status", receipt.Status,
		"requestID", requestID)

	return receipt, nil
}

// buildMultipartBody assembles the multipart payload: the document under the
// "file" part, each attachment under an "attachments" part with its MIME
// type, and the metadata JSON as a plain form field.
func buildMultipartBody(req UploadRequest) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filepath.Base(req.Document))
	if err != nil {
		return nil, "", &UploadError{Op: "upload", Path: req.Document, Err: err}
	}
	if err := copyFile(part, req.Document); err != nil {
		return nil, "", err
	}

	for _, attachment := range req.Attachments {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="attachments"; filename="%s"`,
			escapeQuotes(filepath.Base(attachment))))
		header.Set("Content-Type", attachmentContentType(attachment))

		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", &UploadError{Op: "upload", Path: attachment, Err: err}
		}
		if err := copyFile(part, attachment); err != nil {
			return nil, "", err
		}
	}

	encoded, err := req.Metadata.Encode()
	if err != nil {
		return nil, "", err
	}
	if err := w.WriteField("metadata", string(encoded)); err != nil {
		return nil, "", &UploadError{Op: "upload", Err: err}
	}

	if err := w.Close(); err != nil {
		return nil, "", &UploadError{Op: "upload", Err: err}
	}

	return &buf, w.FormDataContentType(), nil
}

func copyFile(dst io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &UploadError{Op: "upload", Path: path, Err: err}
	}
	defer f.Close()

	if _, err := io.Copy(dst, f); err != nil {
		return &UploadError{Op: "upload", Path: path, Err: err}
	}
	return nil
}

// attachmentContentType picks the MIME type by extension. The ingestion API
// only distinguishes PDFs; everything else goes up as an octet stream.
func attachmentContentType(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return "application/pdf"
	}
	return "application/octet-stream"
}

// parseDocumentID extracts the remote-assigned document identifier from the
// response body. The field name has varied across API versions, so both
// documentId and id are accepted; an empty result is not an error.
func parseDocumentID(body []byte) string {
	var parsed struct {
		DocumentID string `json:"documentId"`
		ID         string `json:"id"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	if parsed.DocumentID != "" {
		return parsed.DocumentID
	}
	return parsed.ID
}

func escapeQuotes(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
