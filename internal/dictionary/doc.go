// Package dictionary provides the read-only English dictionary used to
// annotate translations with pronunciation, definitions and example
// sentences. A Store is loaded once at startup, from the builtin table, a
// YAML/JSON file or a SQL table, and is safe for concurrent readers because
// it is never mutated afterwards.
package dictionary
