/*
Copyright © 2025 AlphaSense Labs
SPDX-License-Identifier: Apache-2.0
*/
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphasense-labs/asingest/pkg/config"
	"github.com/alphasense-labs/asingest/pkg/metadata"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Username:         "analyst@example.com",
		Password:         "secret",
		APIKey:           "test-api-key",
		ClientID:         "test-client",
		ClientSecret:     "test-client-secret",
		AuthURL:          "https://auth.example.com/auth",
		IngestionBaseURL: baseURL,
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestUpload(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "report.pdf", "document bytes")
	att1 := writeFile(t, dir, "exhibit.pdf", "attachment one")
	att2 := writeFile(t, dir, "notes.txt", "attachment two")

	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/upload-document", r.URL.Path)

		// bearer token header exactly once
		authValues := r.Header.Values("Authorization")
		require.Len(t, authValues, 1)
		assert.Equal(t, "bearer token-abc", authValues[0])
		assert.Equal(t, DefaultUploadClientID, r.Header.Get("clientId"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		require.NoError(t, r.ParseMultipartForm(32<<20))
		defer r.MultipartForm.RemoveAll()

		files := r.MultipartForm.File["file"]
		require.Len(t, files, 1)
		assert.Equal(t, "report.pdf", files[0].Filename)

		f, err := files[0].Open()
		require.NoError(t, err)
		content, err := io.ReadAll(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, "document bytes", string(content))

		attachments := r.MultipartForm.File["attachments"]
		require.Len(t, attachments, 2)
		assert.Equal(t, "exhibit.pdf", attachments[0].Filename)
		assert.Equal(t, "application/pdf", attachments[0].Header.Get("Content-Type"))
		assert.Equal(t, "notes.txt", attachments[1].Filename)
		assert.Equal(t, "application/octet-stream", attachments[1].Header.Get("Content-Type"))

		assert.JSONEq(t, `{"title":"Q3 Earnings Call"}`, r.FormValue("metadata"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"documentId":"doc-123"}`)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	receipt, err := c.Upload(context.Background(), "token-abc", UploadRequest{
		Document:    doc,
		Attachments: []string{att1, att2},
		Metadata:    metadata.Object{"title": "Q3 Earnings Call"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, requests, "upload must make exactly one attempt")
	assert.Equal(t, "doc-123", receipt.DocumentID)
	assert.Equal(t, doc, receipt.Document)
	assert.Equal(t, http.StatusOK, receipt.Status)
	assert.NotEmpty(t, receipt.RequestID)
}

func TestUpload_NilMetadata(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "report.pdf", "document bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		assert.Equal(t, "{}", r.FormValue("metadata"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	_, err := c.Upload(context.Background(), "token-abc", UploadRequest{Document: doc})
	require.NoError(t, err)
}

func TestUpload_MissingDocument(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	_, err := c.Upload(context.Background(), "token-abc", UploadRequest{
		Document: filepath.Join(t.TempDir(), "nope.pdf"),
	})
	require.Error(t, err)

	var uerr *UploadError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, 0, requests, "missing document must fail before any network call")
}

func TestUpload_MissingAttachment(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "report.pdf", "document bytes")

	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	_, err := c.Upload(context.Background(), "token-abc", UploadRequest{
		Document:    doc,
		Attachments: []string{filepath.Join(dir, "missing.pdf")},
	})
	require.Error(t, err)

	var uerr *UploadError
	require.True(t, errors.As(err, &uerr))
	assert.Contains(t, uerr.Path, "missing.pdf")
	assert.Equal(t, 0, requests)
}

func TestUpload_EmptyDocumentPath(t *testing.T) {
	c := NewClient(testConfig("https://ingest.example.com/v1"))
	_, err := c.Upload(context.Background(), "token-abc", UploadRequest{})
	require.Error(t, err)

	var uerr *UploadError
	assert.True(t, errors.As(err, &uerr))
}

func TestUpload_RemoteError(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "report.pdf", "document bytes")

	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"error":"unsupported document type"}`)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	_, err := c.Upload(context.Background(), "token-abc", UploadRequest{Document: doc})
	require.Error(t, err)

	var uerr *UploadError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, http.StatusUnprocessableEntity, uerr.StatusCode)
	assert.Contains(t, uerr.Body, "unsupported document type")
	assert.Equal(t, 1, requests, "upload must make exactly one attempt")
}

func TestUpload_CustomClientID(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "report.pdf", "document bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "custom-channel", r.Header.Get("clientId"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), WithUploadClientID("custom-channel"))
	_, err := c.Upload(context.Background(), "token-abc", UploadRequest{Document: doc})
	require.NoError(t, err)
}

func TestAttachmentContentType(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "exhibit.pdf", want: "application/pdf"},
		{path: "EXHIBIT.PDF", want: "application/pdf"},
		{path: "notes.txt", want: "application/octet-stream"},
		{path: "archive.docx", want: "application/octet-stream"},
		{path: "noext", want: "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, attachmentContentType(tt.path))
		})
	}
}

func TestParseDocumentID(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "documentId field", body: `{"documentId":"doc-1"}`, want: "doc-1"},
		{name: "id fallback", body: `{"id":"doc-2"}`, want: "doc-2"},
		{name: "documentId preferred", body: `{"documentId":"doc-1","id":"doc-2"}`, want: "doc-1"},
		{name: "no id", body: `{"status":"accepted"}`, want: ""},
		{name: "not json", body: `accepted`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDocumentID([]byte(tt.body)))
		})
	}
}
