package nav

import (
	"strings"

	"golang.org/x/text/language"
)

// KoreanPrefix marks routes of the Korean edition.
const KoreanPrefix = "/ko"

// Locale identifies an edition of the documentation.
type Locale string

const (
	English Locale = "en"
	Korean  Locale = "ko"
)

// Tag returns the BCP 47 language tag for the locale.
func (l Locale) Tag() language.Tag {
	if l == Korean {
		return language.Korean
	}
	return language.English
}

// Normalize canonicalizes a path into a route: runs of slashes collapse to
// one, trailing slashes are stripped, a leading slash is added, and an empty
// result becomes "/". A route therefore never starts with "//", which a
// browser would read as another host.
func Normalize(path string) string {
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	path = strings.TrimRight(path, "/")
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// IsKorean reports whether route belongs to the Korean edition.
func IsKorean(route string) bool {
	return strings.HasPrefix(route, KoreanPrefix)
}

// LocaleOf derives the locale of a route.
func LocaleOf(route string) Locale {
	if IsKorean(route) {
		return Korean
	}
	return English
}

// Counterpart maps a route to the same logical page in the other locale.
// "/x" becomes "/ko/x" and back; "/" pairs with "/ko".
func Counterpart(route string) string {
	route = Normalize(route)
	if IsKorean(route) {
		return Normalize(strings.TrimPrefix(route, KoreanPrefix))
	}
	if route == "/" {
		return KoreanPrefix
	}
	return KoreanPrefix + route
}
