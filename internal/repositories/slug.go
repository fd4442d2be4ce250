package repositories

import (
	"fmt"

	"github.com/gosimple/slug"
)

// assignUniqueSlug derives a URL slug from name and probes for uniqueness by
// appending "1" until no sibling row carries the candidate. The probe is not
// safe under concurrent creation of identical names; the unique index on the
// slug column is the backstop. Runs on every create and rename.
func assignUniqueSlug(name string, exists func(candidate string) (bool, error)) (string, error) {
	candidate := slug.Make(name)
	for {
		taken, err := exists(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate += "1"
	}
}
