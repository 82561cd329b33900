package storage

import "io"

// BlobStore holds feedback attachments. Keys are slash-separated paths like
// "feedback/<id>/<filename>".
type BlobStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
	Delete(key string) error
}
