// Package checksum records and verifies the integrity of an
// installed scaffold. Write stores the SHA256 hex digest of every
// written file in a .scaffolder.sum file at the install root; Verify
// recomputes the digests later and reports which files have drifted
// or disappeared since the install.
package checksum
