// Package metadata loads document metadata for ingestion uploads.
//
// Metadata is an arbitrary JSON object. The ingestion API documents optional
// fields such as title, companies, docAuthors, sourceType, and customTags,
// but this package deliberately performs no schema validation: whatever shape
// the caller provides is forwarded to the remote API as-is, and the API is
// the authority on acceptance.
//
// The -m CLI argument is interpreted by suffix: values ending in .json are
// read as files, everything else is parsed as an inline JSON string. When no
// metadata is supplied, Default produces a minimal object titled after the
// document file name.
package metadata
