// Package genindex builds a static client-side search index from a tree of
// HTML documentation pages. It walks a directory, extracts a title and a
// cleaned text snippet from every page and writes all records as a single
// compact JSON array.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, bloom/, fs/).
package genindex
