package container

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/richardlehane/mscfb"

	"github.com/m-mizutani/carton/pkg/domain/model"
)

// oleContainer reads OLE compound files. Only streams are exposed: storage
// entries are directory placeholders, not extractable content, and streams
// with an empty name are skipped.
type oleContainer struct {
	f       *os.File
	entries []model.ContainerEntry
	streams []*mscfb.File
}

func openOle(path string) (*oleContainer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open file", goerr.V("path", path))
	}

	doc, err := mscfb.New(f)
	if err != nil {
		f.Close()
		return nil, goerr.Wrap(err, "failed to parse compound file", goerr.V("path", path))
	}

	c := &oleContainer{f: f}
	for {
		entry, err := doc.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			// A directory walk failure mid-iteration is still a parse
			// failure: a truncated listing must not look like success.
			f.Close()
			return nil, goerr.Wrap(err, "failed to walk compound file directory", goerr.V("path", path))
		}
		if entry.FileInfo().IsDir() || entry.Name == "" {
			continue
		}
		name := streamName(entry.Path, entry.Name)
		c.streams = append(c.streams, entry)
		c.entries = append(c.entries, model.ContainerEntry{
			Name:      name,
			Size:      entry.Size,
			MediaType: model.GuessMediaType(name),
		})
	}

	return c, nil
}

// streamName joins a stream's storage ancestry and its own name with "/",
// matching how compound file directory listings report stream paths.
func streamName(path []string, name string) string {
	if len(path) == 0 {
		return name
	}
	return strings.Join(path, "/") + "/" + name
}

func (c *oleContainer) Entries() []model.ContainerEntry {
	return c.entries
}

func (c *oleContainer) Open(i int) (io.ReadCloser, error) {
	if i < 0 || i >= len(c.streams) {
		return nil, goerr.New("entry index out of range", goerr.V("index", i))
	}
	s := c.streams[i]
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return nil, goerr.Wrap(err, "failed to rewind stream", goerr.V("name", c.entries[i].Name))
	}
	return io.NopCloser(io.LimitReader(s, s.Size)), nil
}

func (c *oleContainer) Close() error {
	return c.f.Close()
}
