package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/goliatone/go-robotevents-cache/robotevents"
)

// LoadFixture loads test data from a fixture file.
func LoadFixture(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load fixture from %s: %v", path, err)
	}

	return data
}

// LoadFixtureJSON loads JSON test data from a fixture file and unmarshals it.
func LoadFixtureJSON(t *testing.T, path string, dest any) {
	t.Helper()

	data := LoadFixture(t, path)
	if err := json.Unmarshal(data, dest); err != nil {
		t.Fatalf("failed to unmarshal JSON fixture from %s: %v", path, err)
	}
}

// FixturePath resolves filename inside this package's testdata directory, so
// fixtures can be shared by tests of any package.
func FixturePath(filename string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "testdata", filename)
}

// WorldSkillsFixture is the shape of testdata/world_skills.json: standings
// grouped by season id and grade.
type WorldSkillsFixture map[string]map[robotevents.Grade][]robotevents.SkillsRanking

// LoadWorldSkills returns the standings of one season and grade from
// testdata/world_skills.json.
func LoadWorldSkills(t *testing.T, seasonID string, grade robotevents.Grade) []robotevents.SkillsRanking {
	t.Helper()

	var fixture WorldSkillsFixture
	LoadFixtureJSON(t, FixturePath("world_skills.json"), &fixture)

	rankings, ok := fixture[seasonID][grade]
	if !ok {
		t.Fatalf("world_skills.json has no standings for season %s grade %q", seasonID, grade)
	}
	return rankings
}

// LoadTeamEvents returns the events of testdata/team_events.json.
func LoadTeamEvents(t *testing.T) []robotevents.Event {
	t.Helper()

	var events []robotevents.Event
	LoadFixtureJSON(t, FixturePath("team_events.json"), &events)
	return events
}

// LoadTeamAwards returns the awards of testdata/team_awards.json.
func LoadTeamAwards(t *testing.T) []robotevents.Award {
	t.Helper()

	var awards []robotevents.Award
	LoadFixtureJSON(t, FixturePath("team_awards.json"), &awards)
	return awards
}

// LoadSeasons returns the seasons of testdata/seasons.json.
func LoadSeasons(t *testing.T) []robotevents.Season {
	t.Helper()

	var seasons []robotevents.Season
	LoadFixtureJSON(t, FixturePath("seasons.json"), &seasons)
	return seasons
}
