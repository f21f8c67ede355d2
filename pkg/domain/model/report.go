package model

// InspectRequest describes one inspection run.
type InspectRequest struct {
	Path      string // container file to inspect
	OutputDir string // destination directory for extracted entries
	ListOnly  bool   // list entries without writing files
}

// ExtractionResult is the per-entry outcome of an extraction pass.
type ExtractionResult struct {
	Entry ContainerEntry
	Path  string // destination path, empty if the entry was not written
	Err   error
}

// Succeeded reports whether the entry was written to disk.
func (r ExtractionResult) Succeeded() bool {
	return r.Err == nil
}

// Report is the outcome of one inspection run.
type Report struct {
	RunID   string
	Path    string
	Format  Format
	Entries []ContainerEntry
	Results []ExtractionResult
}
