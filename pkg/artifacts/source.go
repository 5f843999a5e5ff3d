package artifacts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/JaimeStill/opiniao/pkg/storage"
)

// Info describes a stored artifact without reading it.
type Info struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// Source opens named artifacts from a backing location.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Stat(ctx context.Context, name string) (Info, error)
	String() string
}

type dirSource struct {
	dir string
}

// NewDirSource reads artifacts from a local directory.
func NewDirSource(dir string) Source {
	return &dirSource{dir: dir}
}

func (s *dirSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, filepath.Clean(name)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, err
	}
	return f, nil
}

func (s *dirSource) Stat(_ context.Context, name string) (Info, error) {
	fi, err := os.Stat(filepath.Join(s.dir, filepath.Clean(name)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Info{}, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return Info{}, err
	}
	return Info{Name: name, Size: fi.Size(), Modified: fi.ModTime()}, nil
}

func (s *dirSource) String() string {
	return "dir:" + s.dir
}

type blobSource struct {
	store     storage.System
	container string
}

// NewBlobSource reads artifacts from blob storage.
func NewBlobSource(store storage.System, container string) Source {
	return &blobSource{store: store, container: container}
}

func (s *blobSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	rc, err := s.store.Open(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, err
	}
	return rc, nil
}

func (s *blobSource) Stat(ctx context.Context, name string) (Info, error) {
	meta, err := s.store.Find(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Info{}, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return Info{}, err
	}
	return Info{Name: name, Size: meta.ContentLength, Modified: meta.LastModified}, nil
}

func (s *blobSource) String() string {
	return "blob:" + s.container
}
