package slug

import (
	"context"
	"fmt"
	"strconv"

	gosimple "github.com/gosimple/slug"
)

// Fallback is used when the source text has no sluggable characters.
const Fallback = "article"

// MaxLength matches the articles.slug column.
const MaxLength = 255

// maxAttempts bounds the suffix search in Unique.
const maxAttempts = 1000

// reserved slugs collide with static routes under /api/v1/articles.
var reserved = map[string]bool{
	"latest":   true,
	"earliest": true,
}

// IsReserved reports whether s would be shadowed by a static public route.
func IsReserved(s string) bool {
	return reserved[s]
}

// Make normalises source into a lowercase, hyphen-separated slug.
func Make(source string) string {
	s := gosimple.Make(source)
	if s == "" {
		return Fallback
	}
	if len(s) > MaxLength {
		s = trim(s, MaxLength)
	}
	return s
}

// IsValid reports whether s is already in slug form.
func IsValid(s string) bool {
	return gosimple.IsSlug(s)
}

// ExistsFunc reports whether slug is used by an article other than excludeID.
type ExistsFunc func(ctx context.Context, slug string, excludeID int64) (bool, error)

// Generator derives slugs that are unique in the store.
type Generator struct {
	exists ExistsFunc
}

// NewGenerator creates a Generator backed by the given lookup.
func NewGenerator(exists ExistsFunc) *Generator {
	return &Generator{exists: exists}
}

// Unique returns Make(source), or the first of source-2, source-3, ...
// that is neither reserved nor taken by another article.
func (g *Generator) Unique(ctx context.Context, source string, excludeID int64) (string, error) {
	base := Make(source)

	candidate := base
	for n := 2; n < maxAttempts+2; n++ {
		if !IsReserved(candidate) {
			taken, err := g.exists(ctx, candidate, excludeID)
			if err != nil {
				return "", fmt.Errorf("slug.Unique: %w", err)
			}
			if !taken {
				return candidate, nil
			}
		}
		suffix := "-" + strconv.Itoa(n)
		candidate = trim(base, MaxLength-len(suffix)) + suffix
	}
	return "", fmt.Errorf("slug.Unique: no free slug for %q after %d attempts", base, maxAttempts)
}

func trim(s string, n int) string {
	if len(s) <= n {
		return s
	}
	s = s[:n]
	for len(s) > 0 && s[len(s)-1] == '-' {
		s = s[:len(s)-1]
	}
	return s
}
