// Package server exposes the annotator as a JSON HTTP API.
//
// Endpoints:
//
//	POST /api/translate                {text, source_lang}
//	POST /api/translate_with_examples  {text, source_lang}
//	GET  /api/dictionary/{word}
//	GET  /api/health
//
// source_lang is zh (default), en or auto. Errors are reported as
// {"error": "..."} with a 4xx or 5xx status.
package server
