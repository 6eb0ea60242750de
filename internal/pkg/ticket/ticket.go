// Package ticket issues the short public identifiers handed to giveaway
// participants.
package ticket

import (
	"fmt"
	"math/rand"
)

// Prefix is the fixed ticket prefix shown to participants.
const Prefix = "VEC"

// Generate returns an identifier of the form VEC-NNN where NNN is drawn
// uniformly from [100, 999]. With only 900 values the result is not unique
// on its own; callers must check it against existing entries.
func Generate() string {
	n := 100 + rand.Intn(900)

	return fmt.Sprintf("%s-%d", Prefix, n)
}
