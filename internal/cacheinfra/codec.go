package cacheinfra

import (
	"bytes"

	"github.com/goliatone/go-errors"
	"github.com/vmihailenco/msgpack/v5"
)

// structTag makes msgpack reuse the json field names declared on records.
const structTag = "json"

// Encode serializes records with msgpack.
func Encode[T any](records []T) ([]byte, error) {
	if records == nil {
		records = []T{}
	}

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag(structTag)
	if err := enc.Encode(records); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "encode cache entry").
			WithTextCode("CACHE_ENCODE_FAILED")
	}
	return buf.Bytes(), nil
}

// Decode returns a freshly allocated slice for every call, so callers can
// mutate the result without touching the stored payload.
func Decode[T any](payload []byte) ([]T, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(payload))
	dec.SetCustomStructTag(structTag)

	var records []T
	if err := dec.Decode(&records); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "decode cache entry").
			WithTextCode("CACHE_DECODE_FAILED")
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}
