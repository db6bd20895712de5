package testsupport

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/goliatone/go-robotevents-cache/robotevents"
)

// FakeFetcher is an in-memory robotevents.Fetcher for tests. It counts calls
// per operation, can hold calls until released and can fail on demand.
// Operations with no configured data resolve to an empty list.
type FakeFetcher struct {
	mu          sync.Mutex
	seasons     map[int][]robotevents.Season
	worldSkills map[string][]robotevents.SkillsRanking
	events      map[int][]robotevents.Event
	awards      map[int][]robotevents.Award
	calls       map[string]int
	failures    map[string]error
	gates       map[string]chan struct{}
	started     chan string
}

var _ robotevents.Fetcher = (*FakeFetcher)(nil)

func NewFakeFetcher() *FakeFetcher {
	return &FakeFetcher{
		seasons:     make(map[int][]robotevents.Season),
		worldSkills: make(map[string][]robotevents.SkillsRanking),
		events:      make(map[int][]robotevents.Event),
		awards:      make(map[int][]robotevents.Award),
		calls:       make(map[string]int),
		failures:    make(map[string]error),
		gates:       make(map[string]chan struct{}),
		started:     make(chan string, 1024),
	}
}

// Call names identify a single fetch operation and its arguments.
func SeasonsCall(programID int) string { return fmt.Sprintf("seasons:%d", programID) }

func WorldSkillsCall(seasonID int, grade robotevents.Grade) string {
	return fmt.Sprintf("world_skills:%d:%s", seasonID, grade)
}

func TeamEventsCall(teamID int) string { return fmt.Sprintf("team_events:%d", teamID) }

func TeamAwardsCall(teamID int) string { return fmt.Sprintf("team_awards:%d", teamID) }

func (f *FakeFetcher) SetSeasons(programID int, seasons []robotevents.Season) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seasons[programID] = seasons
}

func (f *FakeFetcher) SetWorldSkills(seasonID int, grade robotevents.Grade, rankings []robotevents.SkillsRanking) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.worldSkills[WorldSkillsCall(seasonID, grade)] = rankings
}

func (f *FakeFetcher) SetTeamEvents(teamID int, events []robotevents.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events[teamID] = events
}

func (f *FakeFetcher) SetTeamAwards(teamID int, awards []robotevents.Award) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.awards[teamID] = awards
}

// Fail makes every following call named call return err until Succeed.
func (f *FakeFetcher) Fail(call string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[call] = err
}

// Succeed clears a failure set with Fail.
func (f *FakeFetcher) Succeed(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.failures, call)
}

// Hold blocks calls named call until the returned release func runs.
// Release is idempotent.
func (f *FakeFetcher) Hold(call string) (release func()) {
	gate := make(chan struct{})

	f.mu.Lock()
	f.gates[call] = gate
	f.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			if f.gates[call] == gate {
				delete(f.gates, call)
			}
			f.mu.Unlock()
			close(gate)
		})
	}
}

// Started receives the name of every call as soon as it is counted.
func (f *FakeFetcher) Started() <-chan string {
	return f.started
}

// Calls returns how many times call was invoked.
func (f *FakeFetcher) Calls(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[call]
}

// TotalCalls returns the number of invocations across every operation.
func (f *FakeFetcher) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *FakeFetcher) FetchSeasons(ctx context.Context, programID int) ([]robotevents.Season, error) {
	if err := f.enter(ctx, SeasonsCall(programID)); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.seasons[programID]), nil
}

func (f *FakeFetcher) FetchWorldSkillsRankings(ctx context.Context, seasonID int, grade robotevents.Grade) ([]robotevents.SkillsRanking, error) {
	call := WorldSkillsCall(seasonID, grade)
	if err := f.enter(ctx, call); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.worldSkills[call]), nil
}

func (f *FakeFetcher) FetchTeamEvents(ctx context.Context, teamID int) ([]robotevents.Event, error) {
	if err := f.enter(ctx, TeamEventsCall(teamID)); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.events[teamID]), nil
}

func (f *FakeFetcher) FetchTeamAwards(ctx context.Context, teamID int) ([]robotevents.Award, error) {
	if err := f.enter(ctx, TeamAwardsCall(teamID)); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.awards[teamID]), nil
}

// enter counts the call, waits on its gate and returns the configured failure.
func (f *FakeFetcher) enter(ctx context.Context, call string) error {
	f.mu.Lock()
	f.calls[call]++
	gate := f.gates[call]
	f.mu.Unlock()

	select {
	case f.started <- call:
	default:
	}

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failures[call]
}
