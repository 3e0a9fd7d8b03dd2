// Package interactive implements the numbered terminal menu: translate in
// either direction, look up a word, or translate with annotations using
// automatic language detection.
package interactive
