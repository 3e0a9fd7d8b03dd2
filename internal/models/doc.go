// Package models lists the OpenAI chat models usable for translation with
// the configured API key.
package models
