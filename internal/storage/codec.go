package storage

import (
	"encoding/json"

	"github.com/rs/zerolog"
)

// SchemaVersion is written into every persisted table payload so future
// format changes can be detected at load time.
const SchemaVersion = 1

// tableEnvelope is the persisted form of one logical table.
type tableEnvelope[T any] struct {
	SchemaVersion int `json:"schemaVersion"`
	Records       []T `json:"records"`
}

// LoadTable decodes the table stored under key. It never fails: a missing
// key, an unreadable medium or a malformed payload all yield an empty slice.
// Losing a table is preferable to refusing to serve at all, so decode
// problems are logged and swallowed here.
func LoadTable[T any](m Medium, key string, lgr zerolog.Logger) []T {
	raw, ok, err := m.Get(key)
	if err != nil {
		lgr.Warn().Err(err).Str("table", key).Msg("Storage read failed, treating table as empty")
		return []T{}
	}
	if !ok || len(raw) == 0 {
		return []T{}
	}

	var env tableEnvelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		lgr.Warn().Err(err).Str("table", key).Msg("Discarding malformed table payload")
		return []T{}
	}
	if env.Records == nil {
		return []T{}
	}
	return env.Records
}

// EncodeTable serializes records into the persisted envelope form.
func EncodeTable[T any](records []T) ([]byte, error) {
	return json.Marshal(tableEnvelope[T]{
		SchemaVersion: SchemaVersion,
		Records:       records,
	})
}

// SaveTable fully overwrites the table stored under key.
func SaveTable[T any](m Medium, key string, records []T) error {
	payload, err := EncodeTable(records)
	if err != nil {
		return err
	}
	return m.Set(key, payload)
}
