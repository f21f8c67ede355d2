package usecase

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/carton/pkg/domain/interfaces"
	"github.com/m-mizutani/carton/pkg/domain/model"
	"github.com/m-mizutani/carton/pkg/domain/types"
	"github.com/m-mizutani/carton/pkg/utils/safename"
)

type inspectUseCase struct {
	opener interfaces.ContainerOpener
}

// NewInspect creates a new InspectUseCase instance
func NewInspect(opener interfaces.ContainerOpener) interfaces.InspectUseCase {
	return &inspectUseCase{
		opener: opener,
	}
}

// Inspect detects the container format of req.Path, lists the embedded
// entries, and extracts them into req.OutputDir unless req.ListOnly is set.
// A missing input, an unrecognized format, or an unreadable container is
// terminal. Per-entry failures are recorded in the report and logged, and
// never abort the run: partial success is success.
func (uc *inspectUseCase) Inspect(ctx context.Context, req *model.InspectRequest) (*model.Report, error) {
	runID := uuid.NewString()
	logger := ctxlog.From(ctx).With("run_id", runID)

	if _, err := os.Stat(req.Path); err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.New("file not found",
				goerr.V("path", req.Path), goerr.T(types.TagNotFound))
		}
		return nil, goerr.Wrap(err, "cannot access file",
			goerr.V("path", req.Path), goerr.T(types.TagNotFound))
	}

	format, err := uc.opener.Detect(req.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "format detection failed",
			goerr.V("path", req.Path), goerr.T(types.TagUnsupportedFormat))
	}
	if format == model.FormatUnknown {
		return nil, goerr.New("could not identify container format",
			goerr.V("path", req.Path), goerr.T(types.TagUnsupportedFormat))
	}

	logger.Info("Processing container",
		"path", req.Path,
		"format", string(format),
	)

	c, err := uc.opener.Open(req.Path, format)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read container",
			goerr.V("path", req.Path),
			goerr.V("format", format),
			goerr.T(types.TagCorruptContainer))
	}
	defer c.Close()

	report := &model.Report{
		RunID:   runID,
		Path:    req.Path,
		Format:  format,
		Entries: c.Entries(),
	}

	for _, e := range report.Entries {
		logger.Info("Found embedded entry",
			"name", e.Name,
			"size", e.Size,
			"media_type", e.MediaType,
		)
	}

	if req.ListOnly {
		return report, nil
	}

	for i, e := range report.Entries {
		if e.Dir {
			logger.Debug("Skipping directory placeholder", "name", e.Name)
			continue
		}

		res := uc.extractEntry(c, i, e, format, req.OutputDir)
		if res.Succeeded() {
			logger.Info("Extracted entry", "name", e.Name, "dest", res.Path)
		} else {
			logger.Error("Failed to extract entry", "name", e.Name, "error", res.Err)
		}
		report.Results = append(report.Results, res)
	}

	return report, nil
}

// extractEntry writes one entry under outputDir using a flattened, sanitized
// filename, overwriting any existing file of the same name. Failures are
// contained in the result.
func (uc *inspectUseCase) extractEntry(c interfaces.Container, i int, e model.ContainerEntry, format model.Format, outputDir string) model.ExtractionResult {
	name, err := safename.Flatten(format, e.Name)
	if err != nil {
		return model.ExtractionResult{Entry: e, Err: goerr.Wrap(err, "unusable entry name", goerr.T(types.TagEntryIO))}
	}
	dest := filepath.Join(outputDir, name)

	src, err := c.Open(i)
	if err != nil {
		return model.ExtractionResult{Entry: e, Err: goerr.Wrap(err, "failed to read entry", goerr.T(types.TagEntryIO))}
	}
	defer src.Close()

	dst, err := os.Create(dest)
	if err != nil {
		return model.ExtractionResult{Entry: e, Err: goerr.Wrap(err, "failed to create output file",
			goerr.V("dest", dest), goerr.T(types.TagEntryIO))}
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return model.ExtractionResult{Entry: e, Err: goerr.Wrap(err, "failed to write entry",
			goerr.V("dest", dest), goerr.T(types.TagEntryIO))}
	}
	if err := dst.Close(); err != nil {
		return model.ExtractionResult{Entry: e, Err: goerr.Wrap(err, "failed to finish output file",
			goerr.V("dest", dest), goerr.T(types.TagEntryIO))}
	}

	return model.ExtractionResult{Entry: e, Path: dest}
}
