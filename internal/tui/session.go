package tui

import (
	"fmt"
	"log/slog"

	"github.com/theirongolddev/burndown/internal/model"

	"github.com/google/uuid"
)

// session is the state shared by every copy of App. It listens to the
// collection and to each project in it, and keeps the sorted rows the list
// screen draws. Rows are rebuilt lazily after any change.
type session struct {
	coll   *model.Collection
	log    *slog.Logger
	rows   []*model.Project
	stale  bool
	status string

	watching map[uuid.UUID]func()
}

func newSession(coll *model.Collection, log *slog.Logger) *session {
	s := &session{
		coll:     coll,
		log:      log,
		stale:    true,
		watching: make(map[uuid.UUID]func()),
	}
	coll.Subscribe(s.onCollection)
	s.syncWatches()
	return s
}

func (s *session) onCollection(c model.Change) {
	s.stale = true
	s.log.Debug("collection changed", "change", c)

	switch c {
	case model.ChangeProjectAdded, model.ChangeProjectRemoved:
		s.syncWatches()
	case model.ChangeSort:
		s.status = fmt.Sprintf("Sorted by %s %s", s.coll.SortKey().Label(), s.coll.Direction())
	}
}

// syncWatches subscribes to projects that joined the collection and drops
// subscriptions of projects that left it.
func (s *session) syncWatches() {
	present := make(map[uuid.UUID]bool, s.coll.Len())
	for _, p := range s.coll.Projects() {
		present[p.ID()] = true
		if _, ok := s.watching[p.ID()]; ok {
			continue
		}
		s.watching[p.ID()] = p.Subscribe(func(c model.Change) {
			s.stale = true
			s.log.Debug("project changed", "project", p.ID(), "change", c)
		})
	}
	for id, unsubscribe := range s.watching {
		if !present[id] {
			unsubscribe()
			delete(s.watching, id)
		}
	}
}

// Rows returns the projects in display order.
func (s *session) Rows() []*model.Project {
	if s.stale {
		s.rows = s.coll.Sorted()
		s.stale = false
	}
	return s.rows
}

// indexOf returns the display row of id, or -1.
func (s *session) indexOf(id uuid.UUID) int {
	for i, p := range s.Rows() {
		if p.ID() == id {
			return i
		}
	}
	return -1
}
