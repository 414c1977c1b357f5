package entry

import (
	"net/url"
	"strings"
)

// SafeImageURL applies the image policy: http, https and scheme-less
// relative references are allowed, every other scheme is refused.
func SafeImageURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		if u.Host == "" {
			return "", false
		}
		return raw, true
	case "":
		// A colon before the first slash would be read as a scheme by browsers.
		if i := strings.IndexByte(raw, ':'); i >= 0 {
			if j := strings.IndexByte(raw, '/'); j < 0 || i < j {
				return "", false
			}
		}
		return raw, true
	default:
		return "", false
	}
}
