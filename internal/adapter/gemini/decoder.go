package gemini

import "strings"

// suggestionsMarker separates the script body from the improvement
// suggestions in the requested output format.
const suggestionsMarker = "---SUGGESTIONS---"

// maxSuggestions caps the returned suggestion list.
const maxSuggestions = 5

type decoded struct {
	body        string
	suggestions []string
}

// decoder splits raw model output into script body and suggestions.
// Returns ok=false when the raw text does not match its protocol.
type decoder interface {
	decode(raw string) (decoded, bool)
}

// delimiterDecoder implements the explicit protocol: everything before
// the marker line is the body, bullet lines after it are suggestions.
type delimiterDecoder struct {
	marker string
}

func (d delimiterDecoder) decode(raw string) (decoded, bool) {
	lines := strings.Split(raw, "\n")
	markerAt := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == d.marker {
			markerAt = i
			break
		}
	}
	if markerAt < 0 {
		return decoded{}, false
	}

	body := strings.TrimRight(strings.Join(lines[:markerAt], "\n"), "\n ")
	var suggestions []string
	for _, line := range lines[markerAt+1:] {
		if len(suggestions) == maxSuggestions {
			break
		}
		if s, ok := cleanBullet(line); ok {
			suggestions = append(suggestions, s)
		}
	}
	return decoded{body: body, suggestions: suggestions}, true
}

// positionalDecoder is the legacy heuristic: all lines except the
// trailing block are the body, bullet lines within the trailing block
// are suggestions. With fewer lines than the trailing count the body
// comes out empty, which is why this decoder runs last.
type positionalDecoder struct {
	trailing int
}

func (d positionalDecoder) decode(raw string) (decoded, bool) {
	lines := strings.Split(raw, "\n")

	cut := len(lines) - d.trailing
	if cut < 0 {
		cut = 0
	}

	var suggestions []string
	for _, line := range lines[cut:] {
		if s, ok := cleanBullet(line); ok {
			suggestions = append(suggestions, s)
		}
	}
	return decoded{
		body:        strings.Join(lines[:cut], "\n"),
		suggestions: suggestions,
	}, true
}

var bulletMarkers = []string{"- ", "-", "* ", "*", "• ", "•"}

// cleanBullet strips a leading bullet marker and surrounding whitespace.
// Lines without a marker report ok=false.
func cleanBullet(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, marker)), true
		}
	}
	return "", false
}
