package container

import (
	"archive/zip"
	"bytes"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/carton/pkg/domain/interfaces"
	"github.com/m-mizutani/carton/pkg/domain/model"
)

// zipMagic is the ZIP local-file-header signature used by the raw fallback probe.
var zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}

const oleMediaType = "application/x-ole-storage"

// Detect classifies path by structure, not extension. Probe order is fixed:
// ZIP central directory first, then the OLE compound-file signature, then a
// raw check of the first 4 bytes for the ZIP local-file magic.
func Detect(path string) (model.Format, error) {
	if r, err := zip.OpenReader(path); err == nil {
		r.Close()
		return model.FormatZip, nil
	}

	if mt, err := mimetype.DetectFile(path); err == nil {
		// Walk up the hierarchy so subtypes such as msword still count as OLE.
		for m := mt; m != nil; m = m.Parent() {
			if m.Is(oleMediaType) {
				return model.FormatOle, nil
			}
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return model.FormatUnknown, goerr.Wrap(err, "failed to probe file header", goerr.V("path", path))
	}
	defer f.Close()

	header := make([]byte, len(zipMagic))
	if _, err := io.ReadFull(f, header); err != nil {
		// Too short for the probe: nothing left to try.
		return model.FormatUnknown, nil
	}
	if bytes.Equal(header, zipMagic) {
		return model.FormatZip, nil
	}
	return model.FormatUnknown, nil
}

// Opener opens local container files. It implements interfaces.ContainerOpener.
type Opener struct{}

// New creates an Opener.
func New() *Opener {
	return &Opener{}
}

func (*Opener) Detect(path string) (model.Format, error) {
	return Detect(path)
}

func (*Opener) Open(path string, format model.Format) (interfaces.Container, error) {
	switch format {
	case model.FormatZip:
		return openZip(path)
	case model.FormatOle:
		return openOle(path)
	default:
		return nil, goerr.New("unsupported container format", goerr.V("format", format), goerr.V("path", path))
	}
}
