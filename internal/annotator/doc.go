// Package annotator combines a translation with dictionary annotations.
//
// Annotate translates a text, extracts the English words from whichever
// side of the exchange is English (the translation for Chinese input, the
// original for English input) and attaches example sentences and full
// definitions for every word the dictionary knows. Provider failures are
// captured in the Result instead of being returned, so delivery shells can
// always render something. An Annotator holds no mutable state and may be
// shared by concurrent requests.
package annotator
