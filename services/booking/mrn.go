package booking

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"
)

// MintMRN builds a per-hospital patient record identifier from the hospital
// name's initials, a random 3-digit number, and the current year, e.g.
// "CGH-482-2026". Collisions across patients are acceptable; the MRN is a
// human-facing reference, not a key.
func MintMRN(hospitalName string) string {
	var initials strings.Builder
	for _, word := range strings.Fields(hospitalName) {
		for _, r := range word {
			if unicode.IsLetter(r) {
				initials.WriteRune(unicode.ToUpper(r))
			}
			break
		}
	}
	prefix := initials.String()
	if prefix == "" {
		prefix = "H"
	}
	return fmt.Sprintf("%s-%03d-%d", prefix, rand.Intn(1000), time.Now().Year())
}
