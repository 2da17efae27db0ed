package contenttype

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind is the type tag of a content item.
type Kind string

const (
	Text   Kind = "text"
	Image  Kind = "image"
	Script Kind = "script"
	Link   Kind = "link"
)

// Kinds lists every type tag in display order.
var Kinds = []Kind{Text, Image, Script, Link}

func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}

// ParseKind accepts the lowercase wire names.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("unknown content type %q", s)
	}
	return k, nil
}

var (
	linkPattern = regexp.MustCompile(`^https?://\S+$`)

	scriptPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^(function|const|let|var|class|import|export|if|for|while)`),
		regexp.MustCompile(`(?m)^\s*[<>{}\[\]]`),
		regexp.MustCompile(`^\s*#![/\w]+`),
		regexp.MustCompile(`/\*|\*/|//`),
	}
)

// Classify guesses whether text is a link, source code or prose. The result is
// only a default; callers may override it.
func Classify(text string) Kind {
	if linkPattern.MatchString(strings.TrimSpace(text)) {
		return Link
	}
	for _, p := range scriptPatterns {
		if p.MatchString(text) {
			return Script
		}
	}
	return Text
}
