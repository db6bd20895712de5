// Package resourcecache provides the session-wide cache that sits between the
// companion app screens and the RobotEvents API.
//
// # Overview
//
// The cache keeps one entry per resource kind and key:
//
//   - Seasons, keyed by program id
//   - WorldSkillsRankings, keyed by season id, program id and grade
//   - TeamEvents and TeamAwards, keyed by team id
//
// Every entry is Absent, Pending (a fetch is in flight) or Resolved (an
// ordered, possibly empty, list of records). A Resolved empty list is a
// cache hit: only an explicit refresh fetches it again.
//
// # Basic Usage
//
//	store, _ := cache.NewStore(cache.DefaultConfig())
//	rc := resourcecache.New(apiClient, store, resourcecache.WithLogger(logger))
//
//	// on screen focus
//	rc.PreloadTeamEvents(ctx, 900)
//
//	// while rendering
//	events := rc.TeamEvents(900)
//	loading := rc.IsLoadingTeamEvents(900)
//
//	// pull to refresh
//	if err := rc.RefreshTeamEvents(ctx, 900); err != nil {
//		showError(err)
//	}
//
// # Single Flight
//
// Concurrent preloads of the same key share one fetch. The first caller
// registers the pending flight, later callers wait on it. The fetch runs on a
// context detached from the caller, so it finishes and populates the cache
// even if the screen that asked for it is gone.
//
// # Failure Handling
//
// Preload never returns an error: a failed fetch is logged, the key goes back
// to Absent and the caller gets an empty list. Refresh returns the failure,
// wrapped as a go-errors external error with text code RESOURCE_FETCH_FAILED.
//
// # Invalidation
//
// ClearAll, ClearForProgram, ClearForSeason and ClearForTeam parse every
// stored key and match on its fields, so program 1 never matches program 10.
// A fetch in flight for a cleared key still answers its waiters but its
// result is not stored.
package resourcecache
