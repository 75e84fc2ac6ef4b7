// Package exports expands glob patterns against a source tree and builds the
// JSR export map: an ordered mapping from public import specifiers ("." or
// "./path.ts") to the files that implement them.
//
// Patterns are expanded with doublestar against an fs.FS rooted at the
// working directory, so the resolver never depends on the process state and
// can be exercised against an in-memory tree.
package exports
