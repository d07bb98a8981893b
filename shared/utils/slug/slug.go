// Package slug generates URL-friendly identifiers for websites and pages.
package slug

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	spaceRe    = regexp.MustCompile(`\s+`)
	nonWordRe  = regexp.MustCompile(`[^\w-]+`)
	multiDash  = regexp.MustCompile(`--+`)
	edgeDashes = regexp.MustCompile(`^-+|-+$`)
)

// ReservedSlugs cannot be claimed by user-created websites
var ReservedSlugs = []string{
	"admin",
	"api",
	"auth",
	"login",
	"signup",
	"register",
	"dashboard",
	"settings",
	"profile",
	"account",
	"help",
	"support",
	"terms",
	"privacy",
	"about",
	"contact",
}

// Generate converts text into a lowercase dash-separated slug
func Generate(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = spaceRe.ReplaceAllString(s, "-")
	s = nonWordRe.ReplaceAllString(s, "")
	s = multiDash.ReplaceAllString(s, "-")
	s = edgeDashes.ReplaceAllString(s, "")
	return s
}

// IsReserved reports whether the slug is on the reserved list
func IsReserved(s string) bool {
	lower := strings.ToLower(s)
	for _, reserved := range ReservedSlugs {
		if reserved == lower {
			return true
		}
	}
	return false
}

// ExistsFunc reports whether a candidate slug is already taken in the
// caller's scope
type ExistsFunc func(slug string) (bool, error)

// GenerateUnique appends -1, -2, ... to baseSlug until exists reports false
func GenerateUnique(baseSlug string, exists ExistsFunc) (string, error) {
	candidate := baseSlug
	counter := 1

	for {
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", baseSlug, counter)
		counter++
	}
}
