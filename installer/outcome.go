package installer

// Kind classifies the result of processing one manifest
// entry.
type Kind int

const (
	// KindWritten marks a successfully written output file.
	KindWritten Kind = iota

	// KindTemplateRead marks a template file that could
	// not be opened or read.
	KindTemplateRead

	// KindEmptyContent marks a template that produced no
	// content.
	KindEmptyContent

	// KindRender marks a substitution failure, such as an
	// expression referencing an undefined context entry.
	KindRender

	// KindSubdirCreate marks a failure to create the
	// output file's parent directories.
	KindSubdirCreate

	// KindOutputWrite marks a failure to open or write the
	// output file.
	KindOutputWrite
)

// String returns a short label for log and error output.
func (ki Kind) String() string {
	switch ki {
	case KindWritten:
		return "written"
	case KindTemplateRead:
		return "template read failed"
	case KindEmptyContent:
		return "empty content"
	case KindRender:
		return "render failed"
	case KindSubdirCreate:
		return "subdirectory creation failed"
	case KindOutputWrite:
		return "output write failed"
	default:
		return "unknown"
	}
}

// Outcome reports what happened to one manifest entry.
// Outcomes are returned in processing order (sorted by
// output path).
type Outcome struct {
	// Key is the manifest template key.
	Key string

	// OutputPath is the manifest output path relative to
	// the install root.
	OutputPath string

	// Path is the absolute path written on success.
	Path string

	// Kind classifies the outcome.
	Kind Kind

	// Err carries the failure for non-written kinds.
	Err error
}

// Written reports whether the entry's output file was
// written.
func (ou Outcome) Written() bool {
	return ou.Kind == KindWritten
}
