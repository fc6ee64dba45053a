package dimension

import "strings"

// PowerWords make titles more compelling.
var PowerWords = []string{
	"ultimate", "essential", "complete", "proven", "amazing", "incredible",
	"best", "top", "guide", "tips", "secrets", "exclusive",
}

// CallsToAction are verbs that invite a click.
var CallsToAction = []string{
	"learn", "discover", "find out", "read more", "get", "download",
	"buy", "shop", "try", "start",
}

// GenericPhrases mark a description as boilerplate.
var GenericPhrases = []string{
	"this page", "this article", "click here", "read more",
}

// ContainsFold reports whether text contains needle, ignoring case.
func ContainsFold(text, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(needle))
}

// ContainsAnyFold reports whether text contains any of terms, ignoring case.
func ContainsAnyFold(text string, terms []string) bool {
	lower := strings.ToLower(text)
	for _, t := range terms {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}
