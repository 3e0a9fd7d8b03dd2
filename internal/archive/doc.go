// Package archive moves a previous batch output directory out of the way
// before a new run.
package archive
