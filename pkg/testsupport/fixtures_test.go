package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-robotevents-cache/robotevents"
)

func TestLoadFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.txt")
	if err := os.WriteFile(path, []byte("fixture content"), 0o644); err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}

	if got := LoadFixture(t, path); string(got) != "fixture content" {
		t.Errorf("expected fixture content, got %q", got)
	}
}

func TestLoadFixtureJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.json")
	if err := os.WriteFile(path, []byte(`{"id": 41, "name": "VEX IQ Robotics Competition", "code": "VIQRC"}`), 0o644); err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}

	var ref robotevents.IDRef
	LoadFixtureJSON(t, path, &ref)

	if ref.ID != 41 || ref.Code != "VIQRC" {
		t.Errorf("unexpected program ref %+v", ref)
	}
}

func TestFixturePath(t *testing.T) {
	path := FixturePath("seasons.json")
	if filepath.Base(filepath.Dir(path)) != "testdata" {
		t.Errorf("expected a testdata path, got %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected fixture to exist: %v", err)
	}
}

func TestBundledFixtures(t *testing.T) {
	ms := LoadWorldSkills(t, "190", robotevents.GradeMiddleSchool)
	if len(ms) != 2 || ms[1].Team.ID != 900 || ms[1].Team.Number != "1200A" {
		t.Errorf("unexpected Middle School standings %+v", ms)
	}
	if hs := LoadWorldSkills(t, "190", robotevents.GradeHighSchool); len(hs) != 3 {
		t.Errorf("expected 3 High School standings, got %d", len(hs))
	}

	events := LoadTeamEvents(t)
	if len(events) != 2 || events[0].Start.IsZero() {
		t.Errorf("unexpected events %+v", events)
	}

	awards := LoadTeamAwards(t)
	if len(awards) != 2 || len(awards[0].TeamWinners) != 1 {
		t.Errorf("unexpected awards %+v", awards)
	}

	seasons := LoadSeasons(t)
	if len(seasons) != 2 || seasons[0].Program.ID != robotevents.ProgramV5RC {
		t.Errorf("unexpected seasons %+v", seasons)
	}
}
