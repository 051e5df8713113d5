package domain

import "github.com/gosimple/slug"

// Slugify derives a URL-safe identifier from a human-readable project name
// ("My Project!" -> "my-project"). Two of the three platforms embed the slug
// directly in the URL path, so derivation must stay deterministic across
// providers.
func Slugify(name string) string {
	return slug.Make(name)
}
