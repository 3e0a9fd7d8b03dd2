// Package app wires configuration, dictionary, translation provider and
// annotator together and implements the bilingo commands on top of them.
package app
