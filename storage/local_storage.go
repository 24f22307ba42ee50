package storage

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// LocalStorage keeps backup snapshots in a directory on disk.
type LocalStorage struct {
	BasePath string
}

func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{BasePath: basePath}
}

func (s *LocalStorage) Upload(file io.Reader, filename string) (string, error) {
	logrus.Infof("Writing snapshot: %s", filename)
	if err := os.MkdirAll(s.BasePath, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.BasePath, filename)
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", err
	}
	return path, nil
}

func (s *LocalStorage) Download(filename string) (*os.File, error) {
	logrus.Infof("Opening snapshot: %s", filename)
	path := filepath.Join(s.BasePath, filename)
	return os.Open(path)
}

func (s *LocalStorage) Delete(filename string) error {
	logrus.Infof("Deleting snapshot: %s", filename)
	path := filepath.Join(s.BasePath, filename)
	return os.Remove(path)
}

func (s *LocalStorage) Exists(filename string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.BasePath, filename))
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}
