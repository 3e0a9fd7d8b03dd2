package lang

import (
	"fmt"
	"unicode"

	"github.com/abadojack/whatlanggo"
)

// Detector guesses the language of a text. Detection is best effort and
// not reliable for mixed-script input.
type Detector interface {
	Detect(text string) Lang
}

// CJKDetector reports Chinese as soon as the text contains a CJK unified
// ideograph and English otherwise.
type CJKDetector struct{}

// Detect implements Detector.
func (CJKDetector) Detect(text string) Lang {
	for _, r := range text {
		if r >= 0x4e00 && r <= 0x9fff {
			return Chinese
		}
	}
	return English
}

// WhatlangDetector uses trigram statistics from whatlanggo. Short inputs
// fall back to the CJK check because whatlanggo needs some text to work with.
type WhatlangDetector struct{}

// Detect implements Detector.
func (WhatlangDetector) Detect(text string) Lang {
	info := whatlanggo.Detect(text)
	if info.Lang == whatlanggo.Cmn || info.Script == unicode.Han {
		return Chinese
	}
	return CJKDetector{}.Detect(text)
}

// NewDetector returns the detector registered under method.
func NewDetector(method string) (Detector, error) {
	switch method {
	case "", "cjk":
		return CJKDetector{}, nil
	case "whatlang":
		return WhatlangDetector{}, nil
	default:
		return nil, fmt.Errorf("unknown detection method: %s", method)
	}
}
