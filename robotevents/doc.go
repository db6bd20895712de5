// Package robotevents defines the records the cache stores and the fetcher
// contract of the REST client that produces them.
package robotevents
