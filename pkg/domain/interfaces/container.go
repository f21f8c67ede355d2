package interfaces

import (
	"io"

	"github.com/m-mizutani/carton/pkg/domain/model"
)

// Container is an opened container file of a known format.
type Container interface {
	// Entries returns the container's directory in stored order. The slice
	// is materialized once when the container is opened.
	Entries() []model.ContainerEntry

	// Open returns a reader for the i-th entry of Entries.
	Open(i int) (io.ReadCloser, error)

	io.Closer
}

// ContainerOpener detects container formats and opens container files.
type ContainerOpener interface {
	Detect(path string) (model.Format, error)
	Open(path string, format model.Format) (Container, error)
}
