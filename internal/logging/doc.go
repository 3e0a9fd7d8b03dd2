// Package logging builds the zap logger shared by all components.
package logging
