// Package manifest holds the scaffold definition: the mapping from
// template keys to output-relative paths, the delimiter pair, and the
// packaged default template directory.
//
// A Definition is a plain value. The SetFiles and SetDelimiters
// builders return updated copies and replace wholesale, so a
// definition configured once by a scaffold author cannot be disturbed
// by a later install run. Entries are processed in output-path order
// for deterministic results regardless of declaration order.
package manifest
