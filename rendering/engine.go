package rendering

import (
	"fmt"
	"io"
	"strings"

	"github.com/valyala/fasttemplate"
)

// Default delimiter pair. Triple braces are unlikely to
// collide with the syntax of generated source files.
const (
	DefaultStartTag = "{{{"
	DefaultEndTag   = "}}}"
)

// Renderer renders template source against a data context.
// Implementations must pass text outside delimiters through
// unchanged and fail on expressions that reference entries
// absent from the context.
type Renderer interface {
	Render(
		source string,
		ctx map[string]interface{},
	) (string, error)
}

// Engine is the fasttemplate-backed Renderer. Zero values
// for the tags fall back to the triple-brace defaults.
type Engine struct {
	StartTag string
	EndTag   string
}

// tags returns the configured start/end tags, falling
// back to triple-brace defaults.
func (en Engine) tags() (string, string) {
	startTag := en.StartTag
	if startTag == "" {
		startTag = DefaultStartTag
	}

	endTag := en.EndTag
	if endTag == "" {
		endTag = DefaultEndTag
	}

	return startTag, endTag
}

// Render substitutes every delimited expression in source
// with the matching context value, coerced to text. The
// expression is trimmed of surrounding whitespace and one
// leading "$" sigil before lookup, so "{{{ $name }}}" and
// "{{{name}}}" resolve the same entry. An expression whose
// key is absent from ctx fails the whole render.
func (en Engine) Render(
	source string,
	ctx map[string]interface{},
) (string, error) {
	const errCtx = "rendering template"

	startTag, endTag := en.tags()

	result, err := fasttemplate.ExecuteFuncStringWithErr(
		source, startTag, endTag,
		func(w io.Writer, tag string) (int, error) {
			key := strings.TrimPrefix(
				strings.TrimSpace(tag), "$",
			)

			val, ok := ctx[key]
			if !ok {
				return 0, fmt.Errorf(
					"undefined context entry %q", key,
				)
			}

			return fmt.Fprintf(w, "%v", val)
		},
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return result, nil
}
