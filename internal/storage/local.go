package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"image-board/internal/utils"
)

type LocalProvider struct {
	// RootPath is the directory holding uploaded files (e.g. "uploads/imgs")
	RootPath  string
	URLPrefix string
}

func NewLocalProvider(root, urlPrefix string) (*LocalProvider, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create storage dir %q: %w", root, err)
	}
	if err := utils.EnsureNoSymlinkBetween(filepath.Dir(root), root); err != nil {
		return nil, err
	}
	if urlPrefix == "" {
		urlPrefix = "/imgs/"
	}
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}
	return &LocalProvider{RootPath: root, URLPrefix: urlPrefix}, nil
}

func (l *LocalProvider) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return utils.SecureJoin(l.RootPath, key)
}

func (l *LocalProvider) Put(ctx context.Context, key string, body io.ReadSeeker, contentType string) error {
	path, err := l.path(key)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}

func (l *LocalProvider) Get(ctx context.Context, key string) (*FileObject, error) {
	path, err := l.path(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	return &FileObject{
		Body:          f,
		ContentLength: stat.Size(),
		ContentType:   "application/octet-stream",
		LastModified:  stat.ModTime(),
	}, nil
}

// Delete 文件不存在时视为成功
func (l *LocalProvider) Delete(ctx context.Context, key string) error {
	path, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (l *LocalProvider) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(l.RootPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			keys = append(keys, entry.Name())
		}
	}
	return keys, nil
}

func (l *LocalProvider) URL(key string) string {
	return l.URLPrefix + key
}
