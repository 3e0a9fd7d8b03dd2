package internal

// Version is the bilingo release version.
const Version = "0.3.0"

// Abbreviate shortens s to at most max runes, appending an ellipsis when
// something was cut. Used for progress lines of long batch inputs.
func Abbreviate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
