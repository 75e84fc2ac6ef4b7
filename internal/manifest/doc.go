// Package manifest locates the Deno/JSR configuration file of a project,
// merges a generated manifest fragment into it and writes it back.
//
// The configuration document is kept as raw JSON and edited with sjson, so
// keys jsrgen does not own survive the merge unchanged and in their original
// order.
package manifest
