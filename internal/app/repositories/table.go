package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kaanyld/tutorhub/internal/storage"
)

// Record is implemented by every stored entity (via models.Meta).
type Record interface {
	EntityID() string
	SetEntityID(id string)
	StampCreated(t time.Time)
}

// Table is the entity store for one logical table: it owns identity
// generation, CRUD and the persistence round-trip. Every operation reads the
// full table from the medium, applies the change and writes the whole table
// back before returning. Lookups are linear scans, which is fine at the
// session-sized data volumes this store serves.
type Table[T any, P interface {
	*T
	Record
}] struct {
	medium storage.Medium
	key    string
	logger zerolog.Logger
	now    func() time.Time
	newID  func() string
}

// NewTable creates a table bound to the given medium and persistence key.
func NewTable[T any, P interface {
	*T
	Record
}](medium storage.Medium, key string, lgr zerolog.Logger) *Table[T, P] {
	return &Table[T, P]{
		medium: medium,
		key:    key,
		logger: lgr.With().Str("table", key).Logger(),
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}
}

// Key returns the persistence key of the table.
func (t *Table[T, P]) Key() string { return t.key }

// List returns the full table in insertion order. Malformed or missing
// persisted state yields an empty slice, never an error.
func (t *Table[T, P]) List() []T {
	return storage.LoadTable[T](t.medium, t.key, t.logger)
}

// Create stamps identity onto rec, appends it and persists the table. A
// pre-assigned id (e.g. a derived conversation id) is kept as is.
func (t *Table[T, P]) Create(rec *T) (*T, error) {
	p := P(rec)
	if p.EntityID() == "" {
		p.SetEntityID(t.newID())
	}
	p.StampCreated(t.now())

	rows := t.List()
	rows = append(rows, *rec)
	if err := storage.SaveTable(t.medium, t.key, rows); err != nil {
		return nil, err
	}
	return rec, nil
}

// GetByID returns the record with the given id. Absence is a normal checked
// outcome, reported through the second return value.
func (t *Table[T, P]) GetByID(id string) (*T, bool) {
	rows := t.List()
	for i := range rows {
		if P(&rows[i]).EntityID() == id {
			rec := rows[i]
			return &rec, true
		}
	}
	return nil, false
}

// Update applies the mutation to the record with the given id and persists
// the table. Fields the mutation does not touch keep their prior values.
// Returns false when the id is not found.
func (t *Table[T, P]) Update(id string, apply func(*T)) (*T, bool, error) {
	rows := t.List()
	for i := range rows {
		if P(&rows[i]).EntityID() == id {
			apply(&rows[i])
			if err := storage.SaveTable(t.medium, t.key, rows); err != nil {
				return nil, true, err
			}
			rec := rows[i]
			return &rec, true, nil
		}
	}
	return nil, false, nil
}

// Delete removes the record with the given id. The removal is hard; rows in
// other tables referencing the id keep dangling and readers must tolerate
// that. Returns whether a record was actually removed.
func (t *Table[T, P]) Delete(id string) (bool, error) {
	rows := t.List()
	for i := range rows {
		if P(&rows[i]).EntityID() == id {
			rows = append(rows[:i], rows[i+1:]...)
			if err := storage.SaveTable(t.medium, t.key, rows); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Filter returns the records matching the predicate, in insertion order.
func (t *Table[T, P]) Filter(match func(*T) bool) []T {
	var out []T
	rows := t.List()
	for i := range rows {
		if match(&rows[i]) {
			out = append(out, rows[i])
		}
	}
	return out
}

// Stamp assigns identity to rec without persisting it. Used when a record is
// written through a unit of work instead of Create.
func (t *Table[T, P]) Stamp(rec *T) {
	p := P(rec)
	if p.EntityID() == "" {
		p.SetEntityID(t.newID())
	}
	p.StampCreated(t.now())
}

// StageReplace stages the given rows as the table's next persisted state on
// the unit of work, without writing anything yet.
func (t *Table[T, P]) StageReplace(uow *storage.UnitOfWork, rows []T) error {
	payload, err := storage.EncodeTable(rows)
	if err != nil {
		return err
	}
	uow.Stage(t.key, payload)
	return nil
}
