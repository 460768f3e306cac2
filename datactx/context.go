package datactx

import (
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
)

// Context maps variable names to the values available to
// template expressions during rendering.
type Context map[string]interface{}

// LoadJSON reads a context from a JSON file containing a
// single object.
func LoadJSON(path string) (Context, error) {
	const errCtx = "loading json context"

	content, err := os.ReadFile(path) //nolint:gosec // path is caller-provided by design
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	ctx := make(Context)

	if err := json.Unmarshal(content, &ctx); err != nil {
		return nil, fmt.Errorf(
			"%s: decoding json: %w", errCtx, err,
		)
	}

	return ctx, nil
}

// LoadVarsFile reads a context from a file of "KEY VALUE"
// lines with the first space as delimiter. Lines without a
// space are silently skipped; CRLF line endings are
// tolerated.
func LoadVarsFile(path string) (Context, error) {
	const errCtx = "loading vars file"

	content, err := os.ReadFile(path) //nolint:gosec // path is caller-provided by design
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	ctx := make(Context)

	for _, line := range strings.Split(
		string(content), "\n",
	) {
		line = strings.TrimSuffix(line, "\r")

		parts := strings.SplitN(line, " ", 2)
		if len(parts) == 2 {
			ctx[parts[0]] = parts[1]
		}
	}

	return ctx, nil
}

// ParseAssignments builds a context from NAME=VALUE
// strings.
func ParseAssignments(pairs []string) (Context, error) {
	const errCtx = "parsing assignments"

	ctx := make(Context)

	for _, pr := range pairs {
		parts := strings.SplitN(pr, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf(
				"%s: assignment must be NAME=value, got %s",
				errCtx, pr,
			)
		}

		ctx[parts[0]] = parts[1]
	}

	return ctx, nil
}

// Merge combines contexts left to right; entries from
// later contexts override earlier ones. Nil inputs are
// skipped.
func Merge(contexts ...Context) Context {
	merged := make(Context)

	for _, ctx := range contexts {
		for key, val := range ctx {
			merged[key] = val
		}
	}

	return merged
}
