// Package datactx assembles the data context handed to the renderer:
// an opaque mapping from variable name to value. Contexts can be
// loaded from JSON files, from "KEY VALUE" line files, or from
// NAME=VALUE assignment strings, and merged with later sources
// overriding earlier ones. The installer passes the context through
// unmodified for every template.
package datactx
