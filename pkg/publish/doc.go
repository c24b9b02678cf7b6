// Package publish writes rendered documents to a destination store.
//
// Two stores are provided: DirStore for a local output directory and
// S3Store for an S3 bucket. Page renders a doc.Page and hands the bytes
// to the store.
package publish
