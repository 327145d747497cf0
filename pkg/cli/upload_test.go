/*
Copyright © 2025 AlphaSense Labs
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphasense-labs/asingest/pkg/ingest"
)

// testEnv wires httptest auth and ingestion servers behind a config file.
type testEnv struct {
	configPath     string
	authRequests   int
	uploadRequests int
	lastMetadata   string
	lastAuthHeader []string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{}

	authSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.authRequests++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"token-abc","token_type":"bearer","refresh_token":"refresh-xyz","expires_in":3600}`)
	}))
	t.Cleanup(authSrv.Close)

	ingestSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.uploadRequests++
		env.lastAuthHeader = r.Header.Values("Authorization")
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		env.lastMetadata = r.FormValue("metadata")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"documentId":"doc-123"}`)
	}))
	t.Cleanup(ingestSrv.Close)

	content := fmt.Sprintf(`[alphasense]
username           = "analyst@example.com"
password           = "secret"
api_key            = "test-api-key"
client_id          = "test-client"
client_secret      = "test-client-secret"
auth_url           = %q
ingestion_base_url = %q
`, authSrv.URL, ingestSrv.URL)

	env.configPath = filepath.Join(t.TempDir(), "alphasense.toml")
	require.NoError(t, os.WriteFile(env.configPath, []byte(content), 0600))

	return env
}

func TestUpload_EndToEnd(t *testing.T) {
	env := newTestEnv(t)

	dir := t.TempDir()
	doc := filepath.Join(dir, "q3-report.pdf")
	require.NoError(t, os.WriteFile(doc, []byte("document bytes"), 0600))
	out := filepath.Join(dir, "receipt.json")

	err := New().Run(context.Background(), []string{"asingest", "-c", env.configPath, "-o", out, doc})
	require.NoError(t, err)

	assert.Equal(t, 1, env.authRequests, "exactly one token request")
	assert.Equal(t, 1, env.uploadRequests, "exactly one upload request")

	require.Len(t, env.lastAuthHeader, 1)
	assert.Equal(t, "bearer token-abc", env.lastAuthHeader[0])

	// default metadata titles the document after its file name
	assert.JSONEq(t, `{"title":"q3-report.pdf"}`, env.lastMetadata)

	content, err := os.ReadFile(out)
	require.NoError(t, err)

	var receipt ingest.Receipt
	require.NoError(t, json.Unmarshal(content, &receipt))
	assert.Equal(t, "doc-123", receipt.DocumentID)
	assert.Equal(t, doc, receipt.Document)
}

func TestUpload_InlineMetadata(t *testing.T) {
	env := newTestEnv(t)

	dir := t.TempDir()
	doc := filepath.Join(dir, "report.pdf")
	require.NoError(t, os.WriteFile(doc, []byte("document bytes"), 0600))

	err := New().Run(context.Background(), []string{
		"asingest", "-c", env.configPath,
		"-m", `{"title":"Q3 Earnings Call","customTags":["earnings"]}`,
		"-o", filepath.Join(dir, "receipt.json"),
		doc,
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"title":"Q3 Earnings Call","customTags":["earnings"]}`, env.lastMetadata)
}

func TestUpload_MissingDocument(t *testing.T) {
	env := newTestEnv(t)

	err := New().Run(context.Background(), []string{
		"asingest", "-c", env.configPath,
		filepath.Join(t.TempDir(), "nope.pdf"),
	})
	require.Error(t, err)

	var uerr *ingest.UploadError
	assert.True(t, errors.As(err, &uerr))
	assert.Equal(t, 0, env.uploadRequests, "missing document must fail before any upload request")
}

func TestUpload_MissingConfig(t *testing.T) {
	err := New().Run(context.Background(), []string{
		"asingest", "-c", filepath.Join(t.TempDir(), "nope.toml"),
		"whatever.pdf",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
}

func TestUpload_NoArguments(t *testing.T) {
	env := newTestEnv(t)

	err := New().Run(context.Background(), []string{"asingest", "-c", env.configPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document")
	assert.Equal(t, 0, env.authRequests)
}

func TestUpload_UnknownFormat(t *testing.T) {
	env := newTestEnv(t)

	err := New().Run(context.Background(), []string{
		"asingest", "-c", env.configPath, "--format", "xml", "whatever.pdf",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestUpload_MalformedInlineMetadata(t *testing.T) {
	env := newTestEnv(t)

	dir := t.TempDir()
	doc := filepath.Join(dir, "report.pdf")
	require.NoError(t, os.WriteFile(doc, []byte("document bytes"), 0600))

	err := New().Run(context.Background(), []string{
		"asingest", "-c", env.configPath, "-m", `{"title": unclosed`, doc,
	})
	require.Error(t, err)
	assert.Equal(t, 0, env.uploadRequests)
}
