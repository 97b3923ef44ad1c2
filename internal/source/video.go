package source

import (
	"fmt"
	"regexp"
)

var reVideoID = regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11}).*`)

// ParseVideoID extracts the 11 character video id from a watch, short or
// embed URL.
func ParseVideoID(url string) (string, error) {
	m := reVideoID.FindStringSubmatch(url)
	if m == nil {
		return "", fmt.Errorf("%w: no video id in %q", ErrInvalidInput, url)
	}
	return m[1], nil
}
