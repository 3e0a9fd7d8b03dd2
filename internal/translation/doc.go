// Package translation provides the Chinese/English translation providers:
// OpenAI chat completions, Google Gemini and the MyMemory HTTP API. Providers
// can be chained with a fallback and guarded by a circuit breaker. Timeouts
// and failure policy live here so callers can treat a translation as a
// single blocking call.
package translation
