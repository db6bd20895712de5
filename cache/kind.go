package cache

import (
	"strings"
	"unicode"
)

// Kind identifies one of the cached resource categories.
type Kind string

const (
	KindSeasons             Kind = "Seasons"
	KindWorldSkillsRankings Kind = "WorldSkillsRankings"
	KindTeamEvents          Kind = "TeamEvents"
	KindTeamAwards          Kind = "TeamAwards"
)

// Kinds lists every resource kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindSeasons, KindWorldSkillsRankings, KindTeamEvents, KindTeamAwards}
}

func (k Kind) String() string { return string(k) }

// Namespace returns the snake_case prefix used for the kind's serialized keys.
func (k Kind) Namespace() string {
	return toSnake(string(k))
}

func kindForNamespace(ns string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.Namespace() == ns {
			return k, true
		}
	}
	return "", false
}

// toSnake lowers an identifier into snake_case. Runs of non-alphanumeric
// characters collapse into a single underscore so namespaces never contain
// the key separator.
func toSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/2)

	runes := []rune(s)
	pendingUnderscore := false
	for i, r := range runes {
		switch {
		case unicode.IsUpper(r):
			if b.Len() > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				pendingUnderscore = true
			}
			if pendingUnderscore && b.Len() > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			pendingUnderscore = false
		case unicode.IsLower(r), unicode.IsDigit(r):
			if pendingUnderscore && b.Len() > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
			pendingUnderscore = false
		default:
			pendingUnderscore = true
		}
	}
	return b.String()
}
