package cache

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-errors"
)

// KeySeparator defines the delimiter used between cache key segments.
const KeySeparator = "::"

// Key is the structured identity of a cache entry. Only the fields relevant
// to Kind are meaningful; the constructors below leave the rest zeroed.
type Key struct {
	Kind      Kind
	ProgramID int
	SeasonID  int
	Grade     string
	TeamID    int
}

// SeasonsKey identifies the season list of a program.
func SeasonsKey(programID int) Key {
	return Key{Kind: KindSeasons, ProgramID: programID}
}

// WorldSkillsKey identifies the world skills standings of one grade.
func WorldSkillsKey(seasonID, programID int, grade string) Key {
	return Key{Kind: KindWorldSkillsRankings, SeasonID: seasonID, ProgramID: programID, Grade: grade}
}

// TeamEventsKey identifies the events a team attended.
func TeamEventsKey(teamID int) Key {
	return Key{Kind: KindTeamEvents, TeamID: teamID}
}

// TeamAwardsKey identifies the awards a team won.
func TeamAwardsKey(teamID int) Key {
	return Key{Kind: KindTeamAwards, TeamID: teamID}
}

func (k Key) String() string {
	return NewDefaultKeySerializer().SerializeKey(k)
}

// KeySerializer converts structured keys to the string keys used by the
// backing store and back again. Implementations must round trip: ParseKey of
// SerializeKey(k) yields k.
type KeySerializer interface {
	SerializeKey(key Key) string
	ParseKey(raw string) (Key, error)
}

type defaultKeySerializer struct{}

// NewDefaultKeySerializer creates the "::" joined serializer.
//
//	seasons::1
//	world_skills_rankings::181::1::Middle School
//	team_events::900
func NewDefaultKeySerializer() KeySerializer {
	return defaultKeySerializer{}
}

func (defaultKeySerializer) SerializeKey(key Key) string {
	parts := []string{key.Kind.Namespace()}

	switch key.Kind {
	case KindSeasons:
		parts = append(parts, strconv.Itoa(key.ProgramID))
	case KindWorldSkillsRankings:
		// grade goes last so it may contain the separator
		parts = append(parts, strconv.Itoa(key.SeasonID), strconv.Itoa(key.ProgramID), key.Grade)
	case KindTeamEvents, KindTeamAwards:
		parts = append(parts, strconv.Itoa(key.TeamID))
	}

	return strings.Join(parts, KeySeparator)
}

func (defaultKeySerializer) ParseKey(raw string) (Key, error) {
	ns, rest, found := strings.Cut(raw, KeySeparator)
	if !found {
		return Key{}, keyError(raw, "missing separator")
	}

	kind, ok := kindForNamespace(ns)
	if !ok {
		return Key{}, keyError(raw, fmt.Sprintf("unknown namespace %q", ns))
	}

	switch kind {
	case KindSeasons:
		id, err := parseID(rest)
		if err != nil {
			return Key{}, keyError(raw, "program id: "+err.Error())
		}
		return SeasonsKey(id), nil

	case KindWorldSkillsRankings:
		parts := strings.SplitN(rest, KeySeparator, 3)
		if len(parts) != 3 {
			return Key{}, keyError(raw, "expected season, program and grade")
		}
		seasonID, err := parseID(parts[0])
		if err != nil {
			return Key{}, keyError(raw, "season id: "+err.Error())
		}
		programID, err := parseID(parts[1])
		if err != nil {
			return Key{}, keyError(raw, "program id: "+err.Error())
		}
		return WorldSkillsKey(seasonID, programID, parts[2]), nil

	default:
		id, err := parseID(rest)
		if err != nil {
			return Key{}, keyError(raw, "team id: "+err.Error())
		}
		return Key{Kind: kind, TeamID: id}, nil
	}
}

func parseID(s string) (int, error) {
	if strings.Contains(s, KeySeparator) {
		return 0, fmt.Errorf("unexpected segment in %q", s)
	}
	return strconv.Atoi(s)
}

func keyError(raw, reason string) error {
	return errors.New("malformed cache key: "+reason, errors.CategoryBadInput).
		WithTextCode("MALFORMED_CACHE_KEY").
		WithMetadata(map[string]any{"key": raw})
}
