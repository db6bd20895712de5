package resourcecache

import (
	"context"
	"log/slog"

	"github.com/goliatone/go-robotevents-cache/cache"
	"github.com/goliatone/go-robotevents-cache/robotevents"
)

// ResourceCache is the process-wide cache in front of the RobotEvents API.
// Create one per app session and share it; tests should build a fresh one.
type ResourceCache struct {
	seasons     *resource[robotevents.Season]
	worldSkills *resource[robotevents.SkillsRanking]
	teamEvents  *resource[robotevents.Event]
	teamAwards  *resource[robotevents.Award]

	programs robotevents.Programs
	keys     cache.KeySerializer
	logger   *slog.Logger
}

// Option configures a ResourceCache.
type Option func(*ResourceCache)

// WithLogger sets the logger used for fetch and invalidation logs.
func WithLogger(logger *slog.Logger) Option {
	return func(c *ResourceCache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPrograms replaces the program grade configuration.
func WithPrograms(programs robotevents.Programs) Option {
	return func(c *ResourceCache) {
		c.programs = programs
	}
}

// WithKeySerializer replaces the default "::" key serializer.
func WithKeySerializer(keys cache.KeySerializer) Option {
	return func(c *ResourceCache) {
		if keys != nil {
			c.keys = keys
		}
	}
}

// New wires a ResourceCache to the API fetcher and the entry store.
func New(fetcher robotevents.Fetcher, store cache.Store, opts ...Option) *ResourceCache {
	c := &ResourceCache{
		programs: robotevents.DefaultPrograms(),
		keys:     cache.NewDefaultKeySerializer(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.seasons = newResource(cache.KindSeasons, store, c.keys, c.logger,
		func(ctx context.Context, key cache.Key) ([]robotevents.Season, error) {
			return fetcher.FetchSeasons(ctx, key.ProgramID)
		})
	c.worldSkills = newResource(cache.KindWorldSkillsRankings, store, c.keys, c.logger,
		func(ctx context.Context, key cache.Key) ([]robotevents.SkillsRanking, error) {
			return fetcher.FetchWorldSkillsRankings(ctx, key.SeasonID, robotevents.Grade(key.Grade))
		})
	c.teamEvents = newResource(cache.KindTeamEvents, store, c.keys, c.logger,
		func(ctx context.Context, key cache.Key) ([]robotevents.Event, error) {
			return fetcher.FetchTeamEvents(ctx, key.TeamID)
		})
	c.teamAwards = newResource(cache.KindTeamAwards, store, c.keys, c.logger,
		func(ctx context.Context, key cache.Key) ([]robotevents.Award, error) {
			return fetcher.FetchTeamAwards(ctx, key.TeamID)
		})

	return c
}

// Programs returns the program grade configuration in use.
func (c *ResourceCache) Programs() robotevents.Programs {
	return c.programs
}

// Seasons returns the cached seasons of a program without fetching.
func (c *ResourceCache) Seasons(programID int) []robotevents.Season {
	return c.seasons.get(cache.SeasonsKey(programID))
}

// IsLoadingSeasons reports whether a seasons fetch for the program is in flight.
func (c *ResourceCache) IsLoadingSeasons(programID int) bool {
	return c.seasons.isLoading(cache.SeasonsKey(programID))
}

// PreloadSeasons makes sure the seasons of a program are cached and returns them.
func (c *ResourceCache) PreloadSeasons(ctx context.Context, programID int) []robotevents.Season {
	return c.seasons.preload(ctx, cache.SeasonsKey(programID))
}

// RefreshSeasons refetches the seasons of a program, reporting fetch failures.
func (c *ResourceCache) RefreshSeasons(ctx context.Context, programID int) error {
	return c.seasons.refresh(ctx, cache.SeasonsKey(programID))
}

// WorldSkills returns the cached world skills standings of one grade.
func (c *ResourceCache) WorldSkills(seasonID, programID int, grade robotevents.Grade) []robotevents.SkillsRanking {
	return c.worldSkills.get(cache.WorldSkillsKey(seasonID, programID, string(grade)))
}

// IsLoadingWorldSkills reports whether the standings of a grade are being fetched.
func (c *ResourceCache) IsLoadingWorldSkills(seasonID, programID int, grade robotevents.Grade) bool {
	return c.worldSkills.isLoading(cache.WorldSkillsKey(seasonID, programID, string(grade)))
}

// PreloadWorldSkills makes sure the standings of one grade are cached and returns them.
func (c *ResourceCache) PreloadWorldSkills(ctx context.Context, seasonID, programID int, grade robotevents.Grade) []robotevents.SkillsRanking {
	return c.worldSkills.preload(ctx, cache.WorldSkillsKey(seasonID, programID, string(grade)))
}

// RefreshWorldSkills refetches the standings of one grade, reporting fetch failures.
func (c *ResourceCache) RefreshWorldSkills(ctx context.Context, seasonID, programID int, grade robotevents.Grade) error {
	return c.worldSkills.refresh(ctx, cache.WorldSkillsKey(seasonID, programID, string(grade)))
}

// TeamEvents returns the cached events of a team.
func (c *ResourceCache) TeamEvents(teamID int) []robotevents.Event {
	return c.teamEvents.get(cache.TeamEventsKey(teamID))
}

// IsLoadingTeamEvents reports whether the events of a team are being fetched.
func (c *ResourceCache) IsLoadingTeamEvents(teamID int) bool {
	return c.teamEvents.isLoading(cache.TeamEventsKey(teamID))
}

// PreloadTeamEvents makes sure the events of a team are cached and returns them.
func (c *ResourceCache) PreloadTeamEvents(ctx context.Context, teamID int) []robotevents.Event {
	return c.teamEvents.preload(ctx, cache.TeamEventsKey(teamID))
}

// RefreshTeamEvents refetches the events of a team, reporting fetch failures.
func (c *ResourceCache) RefreshTeamEvents(ctx context.Context, teamID int) error {
	return c.teamEvents.refresh(ctx, cache.TeamEventsKey(teamID))
}

// TeamAwards returns the cached awards of a team.
func (c *ResourceCache) TeamAwards(teamID int) []robotevents.Award {
	return c.teamAwards.get(cache.TeamAwardsKey(teamID))
}

// IsLoadingTeamAwards reports whether the awards of a team are being fetched.
func (c *ResourceCache) IsLoadingTeamAwards(teamID int) bool {
	return c.teamAwards.isLoading(cache.TeamAwardsKey(teamID))
}

// PreloadTeamAwards makes sure the awards of a team are cached and returns them.
func (c *ResourceCache) PreloadTeamAwards(ctx context.Context, teamID int) []robotevents.Award {
	return c.teamAwards.preload(ctx, cache.TeamAwardsKey(teamID))
}

// RefreshTeamAwards refetches the awards of a team, reporting fetch failures.
func (c *ResourceCache) RefreshTeamAwards(ctx context.Context, teamID int) error {
	return c.teamAwards.refresh(ctx, cache.TeamAwardsKey(teamID))
}

// ClearAll returns every key of every kind to Absent.
func (c *ResourceCache) ClearAll() int {
	removed := c.seasons.clear(matchAll) +
		c.worldSkills.clear(matchAll) +
		c.teamEvents.clear(matchAll) +
		c.teamAwards.clear(matchAll)

	c.logger.Debug("resource cache cleared", slog.String("scope", "all"), slog.Int("removed", removed))
	return removed
}

// ClearForProgram drops the seasons and world skills standings of a program.
// Team keyed kinds are left alone.
func (c *ResourceCache) ClearForProgram(programID int) int {
	match := func(k cache.Key) bool { return k.ProgramID == programID }
	removed := c.seasons.clear(match) + c.worldSkills.clear(match)

	c.logger.Debug("resource cache cleared",
		slog.String("scope", "program"),
		slog.Int("program_id", programID),
		slog.Int("removed", removed),
	)
	return removed
}

// ClearForSeason drops the world skills standings of every grade of a season.
func (c *ResourceCache) ClearForSeason(seasonID int) int {
	removed := c.worldSkills.clear(func(k cache.Key) bool { return k.SeasonID == seasonID })

	c.logger.Debug("resource cache cleared",
		slog.String("scope", "season"),
		slog.Int("season_id", seasonID),
		slog.Int("removed", removed),
	)
	return removed
}

// ClearForTeam drops the events and awards of a team.
func (c *ResourceCache) ClearForTeam(teamID int) int {
	match := func(k cache.Key) bool { return k.TeamID == teamID }
	removed := c.teamEvents.clear(match) + c.teamAwards.clear(match)

	c.logger.Debug("resource cache cleared",
		slog.String("scope", "team"),
		slog.Int("team_id", teamID),
		slog.Int("removed", removed),
	)
	return removed
}
