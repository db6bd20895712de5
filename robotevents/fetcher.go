package robotevents

import (
	"context"

	"github.com/goliatone/go-errors"
)

// Fetcher is the read side of the REST client the cache sits in front of.
// Each call is a single attempt; retries, timeouts and rate limiting belong to
// the implementation.
type Fetcher interface {
	FetchSeasons(ctx context.Context, programID int) ([]Season, error)
	FetchWorldSkillsRankings(ctx context.Context, seasonID int, grade Grade) ([]SkillsRanking, error)
	FetchTeamEvents(ctx context.Context, teamID int) ([]Event, error)
	FetchTeamAwards(ctx context.Context, teamID int) ([]Award, error)
}

// FetcherFuncs adapts plain functions to Fetcher. Calling an operation whose
// function is nil fails instead of panicking.
type FetcherFuncs struct {
	Seasons             func(ctx context.Context, programID int) ([]Season, error)
	WorldSkillsRankings func(ctx context.Context, seasonID int, grade Grade) ([]SkillsRanking, error)
	TeamEvents          func(ctx context.Context, teamID int) ([]Event, error)
	TeamAwards          func(ctx context.Context, teamID int) ([]Award, error)
}

var _ Fetcher = FetcherFuncs{}

func (f FetcherFuncs) FetchSeasons(ctx context.Context, programID int) ([]Season, error) {
	if f.Seasons == nil {
		return nil, notConfigured("seasons")
	}
	return f.Seasons(ctx, programID)
}

func (f FetcherFuncs) FetchWorldSkillsRankings(ctx context.Context, seasonID int, grade Grade) ([]SkillsRanking, error) {
	if f.WorldSkillsRankings == nil {
		return nil, notConfigured("world skills rankings")
	}
	return f.WorldSkillsRankings(ctx, seasonID, grade)
}

func (f FetcherFuncs) FetchTeamEvents(ctx context.Context, teamID int) ([]Event, error) {
	if f.TeamEvents == nil {
		return nil, notConfigured("team events")
	}
	return f.TeamEvents(ctx, teamID)
}

func (f FetcherFuncs) FetchTeamAwards(ctx context.Context, teamID int) ([]Award, error) {
	if f.TeamAwards == nil {
		return nil, notConfigured("team awards")
	}
	return f.TeamAwards(ctx, teamID)
}

func notConfigured(resource string) error {
	return errors.New("no fetch function configured for "+resource, errors.CategoryOperation).
		WithTextCode("FETCHER_NOT_CONFIGURED")
}
