// Package render formats dictionary entries and annotation results for the
// terminal.
package render
