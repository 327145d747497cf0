// Package ingest implements the multipart upload client for the AlphaSense
// ingestion API.
//
// A single Upload call issues one POST to <ingestion_base_url>/upload-document
// carrying the document bytes ("file" part), any attachments ("attachments"
// parts, MIME-typed by extension), and the metadata JSON ("metadata" form
// field), authorized with a bearer token. Local files are verified before any
// network I/O so a mistyped path never reaches the wire.
//
// The client is deliberately linear: one document per call, one attempt per
// request, failures reported as *UploadError with the HTTP status and
// response body.
package ingest
