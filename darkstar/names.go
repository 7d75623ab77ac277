package darkstar

import "strings"

const minSearchLen = 3

var searchNameReplacer = strings.NewReplacer(" ", "_", "'", "", `"`, "")

// normalizeSearchName turns user input into a LIKE fragment: spaces match
// the underscores darkstar uses in names and quotes are dropped.
func normalizeSearchName(kind, name string) (string, error) {
	n := searchNameReplacer.Replace(name)
	if len([]rune(n)) < minSearchLen {
		return "", validationErr("%s name must be at least %d characters", kind, minSearchLen)
	}
	return n, nil
}

func likeContains(s string) string { return "%" + s + "%" }
