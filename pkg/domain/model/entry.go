package model

import (
	"mime"
	"path"
	"strings"
)

// Format identifies the container format of an input file.
type Format string

const (
	FormatZip     Format = "zip"
	FormatOle     Format = "ole"
	FormatUnknown Format = "unknown"
)

// DefaultMediaType is used when no media type can be guessed from an entry name.
const DefaultMediaType = "application/octet-stream"

// ContainerEntry is one item discovered inside a container. Entries are
// created during a listing pass and never mutated.
type ContainerEntry struct {
	Name      string `json:"name"`       // original path within the container
	Size      int64  `json:"size"`       // byte length
	MediaType string `json:"media_type"` // best-effort guess from the name
	Dir       bool   `json:"dir,omitempty"`
}

// GuessMediaType returns a best-effort media type from the entry name's
// extension. Parameters such as charset are stripped.
func GuessMediaType(name string) string {
	ext := path.Ext(name)
	if ext == "" {
		return DefaultMediaType
	}
	mt := mime.TypeByExtension(ext)
	if mt == "" {
		return DefaultMediaType
	}
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return mt
}
