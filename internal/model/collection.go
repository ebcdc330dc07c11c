package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrDuplicateProject = errors.New("project already in collection")
)

// SortKey selects the derived metric projects are ordered by.
type SortKey int

const (
	SortByProgress SortKey = iota
	SortByRemaining
)

func (k SortKey) String() string {
	switch k {
	case SortByRemaining:
		return "remaining"
	default:
		return "progress"
	}
}

// Label is the on-screen name of the key.
func (k SortKey) Label() string {
	switch k {
	case SortByRemaining:
		return "Remaining Tasks"
	default:
		return "Progress"
	}
}

// ParseSortKey accepts "progress" or "remaining" (case-insensitive).
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "progress":
		return SortByProgress, nil
	case "remaining", "remaining-tasks", "remaining_tasks":
		return SortByRemaining, nil
	}
	return SortByProgress, fmt.Errorf("unknown sort key %q", s)
}

// Direction is the ordering direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// ParseDirection accepts "ascending"/"asc" or "descending"/"desc".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascending", "asc":
		return Ascending, nil
	case "descending", "desc":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("unknown sort direction %q", s)
}

// Collection is the ordered set of saved projects plus the current sort state.
//
// Collection is not safe for concurrent use.
type Collection struct {
	projects  []*Project
	key       SortKey
	direction Direction

	obs observers
}

// NewCollection returns an empty collection with the given sort state.
func NewCollection(key SortKey, dir Direction) *Collection {
	return &Collection{key: key, direction: dir}
}

// Subscribe registers fn to run after every collection mutation.
func (c *Collection) Subscribe(fn func(Change)) (unsubscribe func()) {
	return c.obs.subscribe(fn)
}

func (c *Collection) Len() int { return len(c.projects) }

// Projects returns the projects in storage (insertion) order.
func (c *Collection) Projects() []*Project { return slices.Clone(c.projects) }

// Get returns the project with the given id.
func (c *Collection) Get(id uuid.UUID) (*Project, error) {
	if i := c.index(id); i >= 0 {
		return c.projects[i], nil
	}
	return nil, fmt.Errorf("get %s: %w", id, ErrProjectNotFound)
}

// Add appends p to the collection.
func (c *Collection) Add(p *Project) error {
	if c.index(p.ID()) >= 0 {
		return fmt.Errorf("add %s: %w", p.ID(), ErrDuplicateProject)
	}
	c.projects = append(c.projects, p)
	c.obs.notify(ChangeProjectAdded)
	return nil
}

// Remove drops the project with the given id.
func (c *Collection) Remove(id uuid.UUID) error {
	i := c.index(id)
	if i < 0 {
		return fmt.Errorf("remove %s: %w", id, ErrProjectNotFound)
	}
	c.projects = slices.Delete(c.projects, i, i+1)
	c.obs.notify(ChangeProjectRemoved)
	return nil
}

func (c *Collection) index(id uuid.UUID) int {
	return slices.IndexFunc(c.projects, func(p *Project) bool { return p.ID() == id })
}

func (c *Collection) SortKey() SortKey     { return c.key }
func (c *Collection) Direction() Direction { return c.direction }

func (c *Collection) SetSortKey(k SortKey) {
	c.key = k
	c.obs.notify(ChangeSort)
}

func (c *Collection) SetDirection(d Direction) {
	c.direction = d
	c.obs.notify(ChangeSort)
}

// SelectSortKey is the sort-menu action: picking the current key again
// flips the direction, picking another key switches to it and keeps the
// direction.
func (c *Collection) SelectSortKey(k SortKey) {
	if k == c.key {
		c.direction = c.direction.Toggle()
	} else {
		c.key = k
	}
	c.obs.notify(ChangeSort)
}

// Sorted returns the projects ordered by the current key and direction.
// The collection's own order is left untouched. Projects with equal keys
// keep their insertion order.
func (c *Collection) Sorted() []*Project {
	return SortProjects(c.projects, c.key, c.direction)
}

// SortProjects returns a new slice of projects ordered by key and dir.
func SortProjects(projects []*Project, key SortKey, dir Direction) []*Project {
	metric := (*Project).Progress
	if key == SortByRemaining {
		metric = (*Project).RemainingTasks
	}

	type keyed struct {
		p *Project
		v float64
	}
	ks := make([]keyed, len(projects))
	for i, p := range projects {
		ks[i] = keyed{p: p, v: metric(p)}
	}

	slices.SortStableFunc(ks, func(a, b keyed) int {
		switch {
		case a.v < b.v:
			if dir == Descending {
				return 1
			}
			return -1
		case a.v > b.v:
			if dir == Descending {
				return -1
			}
			return 1
		}
		return 0
	})

	out := make([]*Project, len(ks))
	for i, k := range ks {
		out[i] = k.p
	}
	return out
}
