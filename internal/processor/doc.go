// Package processor runs annotations for the command line: a single text
// rendered to the terminal, or a whole batch file written as JSON lines.
// It is the coordinator between the batch reader, the annotator, the
// renderer and the output archive.
package processor
