package resourcecache

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-robotevents-cache/cache"
	"github.com/goliatone/go-robotevents-cache/robotevents"
)

// WorldSkillsAcrossGrades concatenates the cached standings of every grade of
// a season and program. Grades follow the program's configured order; grades
// the configuration does not know come last, sorted by name. Nothing is fetched.
func (c *ResourceCache) WorldSkillsAcrossGrades(seasonID, programID int) []robotevents.SkillsRanking {
	out := []robotevents.SkillsRanking{}
	for _, grade := range c.cachedGrades(seasonID, programID) {
		out = append(out, c.WorldSkills(seasonID, programID, grade)...)
	}
	return out
}

// PreloadWorldSkillsAcrossGrades preloads every grade in parallel and returns
// the union in grade order. A nil grades slice means the program's configured
// grades. When ctx ends first the result is empty, while the fetches already
// started still complete and fill the cache.
func (c *ResourceCache) PreloadWorldSkillsAcrossGrades(ctx context.Context, seasonID, programID int, grades []robotevents.Grade) []robotevents.SkillsRanking {
	if grades == nil {
		grades = c.programs.Grades(programID)
	}

	results := make([][]robotevents.SkillsRanking, len(grades))
	g, gctx := errgroup.WithContext(ctx)
	for i, grade := range grades {
		g.Go(func() error {
			results[i] = c.PreloadWorldSkills(gctx, seasonID, programID, grade)
			return gctx.Err()
		})
	}
	// fetch failures are soft; only the caller giving up ends the wait early
	if err := g.Wait(); err != nil {
		return []robotevents.SkillsRanking{}
	}

	out := []robotevents.SkillsRanking{}
	for _, rankings := range results {
		out = append(out, rankings...)
	}
	return out
}

// FindTeamWorldSkills probes the grades in the given order for the team's
// standing, filling a grade from the API only when nothing is cached for it.
// It stops at the first grade containing the team. A nil grades slice means
// the program's configured grades. ok is false when no grade lists the team.
func (c *ResourceCache) FindTeamWorldSkills(ctx context.Context, seasonID, programID int, grades []robotevents.Grade, teamID int) (ranking robotevents.SkillsRanking, grade robotevents.Grade, ok bool) {
	if grades == nil {
		grades = c.programs.Grades(programID)
	}

	for _, g := range grades {
		rankings := c.WorldSkills(seasonID, programID, g)
		if len(rankings) == 0 {
			rankings = c.PreloadWorldSkills(ctx, seasonID, programID, g)
		}
		for _, r := range rankings {
			if r.Team.ID == teamID {
				return r, g, true
			}
		}
	}
	return robotevents.SkillsRanking{}, "", false
}

func (c *ResourceCache) cachedGrades(seasonID, programID int) []robotevents.Grade {
	keys := c.worldSkills.cachedKeys(func(k cache.Key) bool {
		return k.SeasonID == seasonID && k.ProgramID == programID
	})

	cached := make(map[robotevents.Grade]bool, len(keys))
	for _, k := range keys {
		cached[robotevents.Grade(k.Grade)] = true
	}

	var ordered []robotevents.Grade
	for _, grade := range c.programs.Grades(programID) {
		if cached[grade] {
			ordered = append(ordered, grade)
			delete(cached, grade)
		}
	}

	rest := make([]robotevents.Grade, 0, len(cached))
	for grade := range cached {
		rest = append(rest, grade)
	}
	slices.Sort(rest)

	return append(ordered, rest...)
}
