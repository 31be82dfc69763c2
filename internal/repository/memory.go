package repository

import (
	"errors"
	"fmt"
	"sync"

	"github.com/noah-isme/drivingschool-api/internal/models"
	"github.com/noah-isme/drivingschool-api/internal/seed"
)

// ErrNoRecord is returned when a lookup matches nothing.
var ErrNoRecord = errors.New("repository: no record")

// ErrDuplicateID is returned when an insert reuses an identifier.
var ErrDuplicateID = errors.New("repository: duplicate identifier")

// table is an insertion-ordered collection indexed by identifier.
type table[T any] struct {
	mu    sync.RWMutex
	rows  []T
	index map[string]int
	id    func(T) string
}

func newTable[T any](id func(T) string) *table[T] {
	return &table[T]{index: make(map[string]int), id: id}
}

func (t *table[T]) load(rows []T) error {
	for _, row := range rows {
		if err := t.insert(row); err != nil {
			return err
		}
	}
	return nil
}

// snapshot returns a copy of every row in insertion order.
func (t *table[T]) snapshot() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i, ok := t.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.rows[i], true
}

func (t *table[T]) find(match func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, row := range t.rows {
		if match(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

func (t *table[T]) insert(row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.id(row)
	if _, dup := t.index[id]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	t.index[id] = len(t.rows)
	t.rows = append(t.rows, row)
	return nil
}

// update applies fn to the stored row in place and returns the result.
func (t *table[T]) update(id string, fn func(*T)) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i, ok := t.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	fn(&t.rows[i])
	return t.rows[i], true
}

// MemoryDB holds every collection for the lifetime of the process.
type MemoryDB struct {
	students    *table[models.Student]
	instructors *table[models.Instructor]
	vehicles    *table[models.Vehicle]
	attendance  *table[models.Attendance]
	schedule    *table[models.Schedule]
}

// Open builds a MemoryDB populated with the given fixture set.
func Open(data seed.Data) (*MemoryDB, error) {
	db := &MemoryDB{
		students:    newTable(func(s models.Student) string { return s.ID }),
		instructors: newTable(func(i models.Instructor) string { return i.ID }),
		vehicles:    newTable(func(v models.Vehicle) string { return v.ID }),
		attendance:  newTable(func(a models.Attendance) string { return a.ID }),
		schedule:    newTable(func(s models.Schedule) string { return s.ID }),
	}
	if err := db.students.load(data.Students); err != nil {
		return nil, fmt.Errorf("load students: %w", err)
	}
	if err := db.instructors.load(data.Instructors); err != nil {
		return nil, fmt.Errorf("load instructors: %w", err)
	}
	if err := db.vehicles.load(data.Vehicles); err != nil {
		return nil, fmt.Errorf("load vehicles: %w", err)
	}
	if err := db.attendance.load(data.Attendance); err != nil {
		return nil, fmt.Errorf("load attendance: %w", err)
	}
	if err := db.schedule.load(data.Schedule); err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}
	return db, nil
}
