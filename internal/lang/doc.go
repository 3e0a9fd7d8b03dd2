// Package lang defines the two languages bilingo translates between and the
// heuristics used to guess which one a piece of text is written in.
package lang
