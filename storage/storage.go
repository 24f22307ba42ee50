package storage

import (
	"io"
	"os"
)

// Storage is the file boundary backup snapshots are written to and read
// back from.
type Storage interface {
	Upload(file io.Reader, filename string) (string, error)
	Download(filename string) (*os.File, error)
	Delete(filename string) error
	Exists(filename string) (bool, error)
}
