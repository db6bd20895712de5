package cache

import (
	"strings"
	"testing"

	"github.com/goliatone/go-errors"
)

func joinWithSeparator(parts ...string) string {
	return strings.Join(parts, KeySeparator)
}

func TestDefaultKeySerializer_SerializeKey(t *testing.T) {
	serializer := NewDefaultKeySerializer()

	tests := []struct {
		name string
		key  Key
		want string
	}{
		{
			name: "seasons",
			key:  SeasonsKey(1),
			want: joinWithSeparator("seasons", "1"),
		},
		{
			name: "world skills",
			key:  WorldSkillsKey(181, 1, "Middle School"),
			want: joinWithSeparator("world_skills_rankings", "181", "1", "Middle School"),
		},
		{
			name: "team events",
			key:  TeamEventsKey(900),
			want: joinWithSeparator("team_events", "900"),
		},
		{
			name: "team awards",
			key:  TeamAwardsKey(900),
			want: joinWithSeparator("team_awards", "900"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := serializer.SerializeKey(tt.key)
			if got != tt.want {
				t.Errorf("SerializeKey() = %q, want %q", got, tt.want)
			}

			parsed, err := serializer.ParseKey(got)
			if err != nil {
				t.Fatalf("ParseKey(%q) failed: %v", got, err)
			}
			if parsed != tt.key {
				t.Errorf("ParseKey(%q) = %+v, want %+v", got, parsed, tt.key)
			}
		})
	}
}

func TestDefaultKeySerializer_GradeWithSeparator(t *testing.T) {
	serializer := NewDefaultKeySerializer()
	key := WorldSkillsKey(190, 41, "Middle::School")

	parsed, err := serializer.ParseKey(serializer.SerializeKey(key))
	if err != nil {
		t.Fatalf("ParseKey failed: %v", err)
	}
	if parsed.Grade != "Middle::School" {
		t.Errorf("expected grade to survive the round trip, got %q", parsed.Grade)
	}
}

func TestDefaultKeySerializer_ProgramIDsDoNotCollide(t *testing.T) {
	serializer := NewDefaultKeySerializer()

	one, err := serializer.ParseKey(serializer.SerializeKey(SeasonsKey(1)))
	if err != nil {
		t.Fatalf("ParseKey failed: %v", err)
	}
	ten, err := serializer.ParseKey(serializer.SerializeKey(SeasonsKey(10)))
	if err != nil {
		t.Fatalf("ParseKey failed: %v", err)
	}

	if one.ProgramID == ten.ProgramID {
		t.Errorf("program ids 1 and 10 parsed to the same value %d", one.ProgramID)
	}
}

func TestDefaultKeySerializer_ParseKeyErrors(t *testing.T) {
	serializer := NewDefaultKeySerializer()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "no separator", raw: "seasons"},
		{name: "unknown namespace", raw: joinWithSeparator("matches", "1")},
		{name: "non numeric program", raw: joinWithSeparator("seasons", "abc")},
		{name: "extra segment", raw: joinWithSeparator("team_events", "900", "1")},
		{name: "world skills missing grade", raw: joinWithSeparator("world_skills_rankings", "181", "1")},
		{name: "world skills bad season", raw: joinWithSeparator("world_skills_rankings", "x", "1", "College")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := serializer.ParseKey(tt.raw)
			if err == nil {
				t.Fatalf("ParseKey(%q) expected error", tt.raw)
			}
			if !errors.IsCategory(err, errors.CategoryBadInput) {
				t.Errorf("expected bad input category, got %v", err)
			}
		})
	}
}

func TestKind_Namespace(t *testing.T) {
	want := map[Kind]string{
		KindSeasons:             "seasons",
		KindWorldSkillsRankings: "world_skills_rankings",
		KindTeamEvents:          "team_events",
		KindTeamAwards:          "team_awards",
	}

	for kind, ns := range want {
		if got := kind.Namespace(); got != ns {
			t.Errorf("%s.Namespace() = %q, want %q", kind, got, ns)
		}
		if _, ok := kindForNamespace(ns); !ok {
			t.Errorf("namespace %q does not map back to %s", ns, kind)
		}
	}
}

func TestToSnake(t *testing.T) {
	tests := map[string]string{
		"":                "",
		"Seasons":         "seasons",
		"HTTPServer":      "http_server",
		"team awards":     "team_awards",
		"Grade--Level  2": "grade_level_2",
	}

	for in, want := range tests {
		if got := toSnake(in); got != want {
			t.Errorf("toSnake(%q) = %q, want %q", in, got, want)
		}
	}
}
