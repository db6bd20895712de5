// Package cache provides configuration, key types and storage contracts for
// the resource cache.
//
// # Overview
//
// This package exports:
//
//   - Config: store sizing, validated with ozzo-validation and loadable from
//     ROBOTEVENTS_CACHE_* environment variables
//   - Kind and Key: the structured identity of a cached entry
//   - KeySerializer: converts keys to the string keys of the store and back
//   - Store: the backing store of resolved entries
//
// # Keys
//
// Keys are built with the per-kind constructors and serialized with "::":
//
//	cache.SeasonsKey(1)                         // seasons::1
//	cache.WorldSkillsKey(181, 1, "High School") // world_skills_rankings::181::1::High School
//	cache.TeamAwardsKey(900)                    // team_awards::900
//
// Invalidation never matches on the string form. Callers parse stored keys
// with ParseKey and compare fields.
//
// # Storage
//
// NewStore returns an unbounded store: entries stay until they are deleted.
// Config.Bounded switches to a sturdyc store capped at Capacity, which evicts
// once a shard fills up. Records are encoded with msgpack on write and decoded
// on every read, so each reader gets its own copy.
package cache
