package lang

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Lang is a source or target language of a translation.
type Lang string

const (
	Chinese Lang = "zh"
	English Lang = "en"
)

// ErrUnsupported is returned by Parse for anything but Chinese or English.
var ErrUnsupported = errors.New("unsupported language")

// Parse accepts the usual spellings of the two supported languages.
func Parse(s string) (Lang, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zh", "zh-cn", "zh_cn", "zh-hans", "cn", "chinese":
		return Chinese, nil
	case "en", "en-us", "en-gb", "english":
		return English, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
	}
}

// Target returns the language a text in l is translated into.
func (l Lang) Target() Lang {
	if l == Chinese {
		return English
	}
	return Chinese
}

// Tag returns the BCP 47 tag for l.
func (l Lang) Tag() language.Tag {
	if l == Chinese {
		return language.SimplifiedChinese
	}
	return language.English
}

// Name returns the English display name used in provider prompts.
func (l Lang) Name() string {
	if l == Chinese {
		return "Simplified Chinese"
	}
	return "English"
}

func (l Lang) String() string {
	return string(l)
}
