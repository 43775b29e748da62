package storage

// UnitOfWork stages writes to several tables so a multi-table operation
// (e.g. confirming a booking and recording its payment) is committed as one
// batch instead of two independent saves. Staging the same key twice keeps
// only the latest payload.
type UnitOfWork struct {
	medium Medium
	order  []string
	staged map[string][]byte
}

// NewUnitOfWork creates an empty unit of work bound to a medium.
func NewUnitOfWork(m Medium) *UnitOfWork {
	return &UnitOfWork{
		medium: m,
		staged: make(map[string][]byte),
	}
}

// Stage records the payload to be written for key on Commit.
func (u *UnitOfWork) Stage(key string, payload []byte) {
	if _, ok := u.staged[key]; !ok {
		u.order = append(u.order, key)
	}
	u.staged[key] = payload
}

// Commit writes every staged table in staging order. The medium writes one
// key at a time, so a failure mid-commit can still leave earlier tables
// written; callers treat a Commit error as a corrupt-session condition.
func (u *UnitOfWork) Commit() error {
	for _, key := range u.order {
		if err := u.medium.Set(key, u.staged[key]); err != nil {
			return err
		}
	}
	u.order = nil
	u.staged = make(map[string][]byte)
	return nil
}

// Len reports how many tables are currently staged.
func (u *UnitOfWork) Len() int {
	return len(u.order)
}
