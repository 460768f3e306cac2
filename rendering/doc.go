// Package rendering substitutes delimited expressions in template
// text with values from a data context. It uses valyala/fasttemplate
// with configurable delimiters (default "{{{" and "}}}").
//
// The Engine type holds the delimiter pair and renders via the Render
// method, which trims whitespace inside a tag and strips one leading
// "$" sigil before looking up the context key. An expression that
// references an entry absent from the context is a rendering error;
// text outside delimiters passes through untouched.
package rendering
