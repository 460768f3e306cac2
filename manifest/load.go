package manifest

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Load reads a scaffold definition from a YAML file.
// Recognized keys: name, template_dir, start_tag, end_tag,
// files (a mapping from template key to output path).
func Load(path string) (Definition, error) {
	const errCtx = "loading scaffold definition"

	content, err := os.ReadFile(path) //nolint:gosec // path is caller-provided by design
	if err != nil {
		return Definition{}, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	var de Definition

	if err := yaml.Unmarshal(content, &de); err != nil {
		return Definition{}, fmt.Errorf(
			"%s: decoding yaml: %w", errCtx, err,
		)
	}

	return de, nil
}
