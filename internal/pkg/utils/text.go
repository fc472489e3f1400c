package utils

// Ellipsis is appended to text cut by Truncate.
const Ellipsis = "..."

// Truncate cuts s to maxLen characters and appends Ellipsis; shorter text is returned as is.
func Truncate(s string, maxLen int) string {
	if maxLen < 0 {
		maxLen = 0
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + Ellipsis
}
