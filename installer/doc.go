// Package installer materializes a scaffold definition on disk. It
// guards that the install target starts empty, then walks the
// manifest in output-path order: read each template, render it
// against the data context, create missing output directories, and
// write the result.
//
// Only the initial directory check is fatal. Every per-entry failure
// (unreadable template, empty content, rendering error, directory or
// write failure) is isolated: the entry is skipped with a warning and
// the remaining entries still install. Install returns one Outcome
// per manifest entry so callers decide how to surface results.
//
// The emptiness check is advisory only: no lock is held between the
// check and the writes, so a concurrent external writer can still
// race the install.
package installer
