package payload

import "strings"

// Marker stands in for a newline in payloads stored on the page
const Marker = "<br /> "

// Decode turns a stored payload back into the text that should reach the clipboard. Every Marker is
// replaced with a newline, repeating until none remain.
func Decode(raw string) string {
	decoded := raw
	for strings.Contains(decoded, Marker) {
		decoded = strings.ReplaceAll(decoded, Marker, "\n")
	}
	return decoded
}

// Encode is the inverse of Decode, as done by whatever generates the page
func Encode(text string) string {
	return strings.ReplaceAll(text, "\n", Marker)
}

// Count returns the number of markers in raw
func Count(raw string) int {
	return strings.Count(raw, Marker)
}
