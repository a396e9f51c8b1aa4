package fontmgr

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/flopp/go-findfont"
)

// ListAvailableFonts enumerates font families installed on the system,
// sorted and deduplicated. Side-effect-free.
//
// findfont exposes file paths only, so family names are approximated from
// file stems: casing follows the file name ("arial") rather than the
// display name ("Arial").
func ListAvailableFonts() []string {
	return familiesFromPaths(findfont.List())
}

func familiesFromPaths(paths []string) []string {
	seen := map[string]string{}
	for _, p := range paths {
		family := familyFromPath(p)
		if family == "" {
			continue
		}
		if _, ok := seen[strings.ToLower(family)]; !ok {
			seen[strings.ToLower(family)] = family
		}
	}
	out := make([]string, 0, len(seen))
	for _, family := range seen {
		out = append(out, family)
	}
	sort.Strings(out)
	return out
}

// styleSuffixes are trimmed off file stems so "Arial Bold Italic" and "Arial"
// collapse to one family.
var styleSuffixes = []string{
	"bold", "italic", "light", "regular", "medium", "semibold",
	"semilight", "black", "thin", "oblique",
}

func familyFromPath(path string) string {
	// findfont reports OS-native separators
	base := filepath.Base(strings.ReplaceAll(path, `\`, "/"))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	words := strings.FieldsFunc(stem, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for len(words) > 0 {
		last := strings.ToLower(words[len(words)-1])
		trimmed := false
		for _, suffix := range styleSuffixes {
			if last == suffix {
				words = words[:len(words)-1]
				trimmed = true
				break
			}
		}
		if !trimmed {
			break
		}
	}
	return strings.TrimSpace(strings.Join(words, " "))
}
