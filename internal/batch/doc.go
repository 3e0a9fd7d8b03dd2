// Package batch reads batch files: one text per line, optionally prefixed
// with "zh:" or "en:" to force the source language.
package batch
