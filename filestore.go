package main

import (
	"os"
	"path/filepath"
)

// FileStore confines file reads and writes under a root directory.
type FileStore struct {
	root string
}

func NewFileStore(root string) *FileStore {
	return &FileStore{root}
}

// resolve maps a request-supplied name to a path under the root. The name
// is cleaned as if rooted, so ".." segments cannot escape.
func (fs *FileStore) resolve(name string) string {
	return filepath.Join(fs.root, filepath.Clean("/"+name))
}

func (fs *FileStore) Exists(name string) bool {
	_, err := os.Stat(fs.resolve(name))
	return err == nil
}

func (fs *FileStore) ReadAll(name string) ([]byte, error) {
	return os.ReadFile(fs.resolve(name))
}

func (fs *FileStore) WriteAll(name string, data []byte) error {
	return os.WriteFile(fs.resolve(name), data, 0644)
}
