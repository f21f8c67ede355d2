package container

import (
	"archive/zip"
	"io"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/carton/pkg/domain/model"
)

// zipContainer reads ZIP/JAR archives. Entries follow the archive's central
// directory order, which is whatever order the archive was written in.
type zipContainer struct {
	rc      *zip.ReadCloser
	entries []model.ContainerEntry
}

func openZip(path string) (*zipContainer, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open zip archive", goerr.V("path", path))
	}

	entries := make([]model.ContainerEntry, 0, len(rc.File))
	for _, f := range rc.File {
		entries = append(entries, model.ContainerEntry{
			Name:      f.Name,
			Size:      int64(f.UncompressedSize64),
			MediaType: model.GuessMediaType(f.Name),
			Dir:       f.FileInfo().IsDir(),
		})
	}

	return &zipContainer{rc: rc, entries: entries}, nil
}

func (c *zipContainer) Entries() []model.ContainerEntry {
	return c.entries
}

func (c *zipContainer) Open(i int) (io.ReadCloser, error) {
	if i < 0 || i >= len(c.rc.File) {
		return nil, goerr.New("entry index out of range", goerr.V("index", i))
	}
	r, err := c.rc.File[i].Open()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open zip entry", goerr.V("name", c.rc.File[i].Name))
	}
	return r, nil
}

func (c *zipContainer) Close() error {
	return c.rc.Close()
}
