// Package session owns the client's view of the shared game: the roster,
// which entity this client controls, and the input it is applying.
//
// Network calls run on their own goroutines. Their results are queued and
// applied by Step, so all session state is touched from a single goroutine.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	"onlinegame/object"
	"onlinegame/store"
	"onlinegame/world"
)

type Store interface {
	List(ctx context.Context) ([]store.Record, error)
	Update(ctx context.Context, ID object.ID, p store.Patch) error
	Beacon(ID object.ID, p store.Patch)
}

type AssignmentState int

const (
	Unassigned AssignmentState = iota
	Assigned
	Released
)

func (a AssignmentState) String() string {
	switch a {
	case Unassigned:
		return "unassigned"
	case Assigned:
		return "assigned"
	case Released:
		return "released"
	}
	return "unknown"
}

type Options struct {
	// ID correlates this session's logs. A ksuid is generated when empty.
	ID           string
	Speed        float64
	SyncInterval time.Duration
	Now          func() time.Time
}

func NewID() string {
	return ksuid.New().String()
}

type Session struct {
	id           string
	ctx          context.Context
	store        Store
	log          *zap.SugaredLogger
	now          func() time.Time
	speed        float64
	syncInterval time.Duration

	roster   *world.Roster
	assigned object.ID
	state    AssignmentState
	input    world.Vector
	lastSync time.Time

	messages chan message
	inflight sync.WaitGroup
}

func New(st Store, opts Options, log *zap.SugaredLogger) *Session {
	if opts.ID == "" {
		opts.ID = NewID()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Session{
		id:           opts.ID,
		ctx:          context.Background(),
		store:        st,
		log:          log.With("session", opts.ID),
		now:          opts.Now,
		speed:        opts.Speed,
		syncInterval: opts.SyncInterval,
		roster:       world.NewRoster(),
		messages:     make(chan message, 1024),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Roster() *world.Roster {
	return s.roster
}

func (s *Session) State() AssignmentState {
	return s.state
}

func (s *Session) Assigned() (object.ID, bool) {
	return s.assigned, s.state == Assigned
}

func (s *Session) Input() world.Vector {
	return s.input
}

// Start fetches the roster once and waits for it. ctx is used for every
// request the session makes afterwards. A failed fetch leaves the roster
// empty; the periodic fetch in Step tries again.
func (s *Session) Start(ctx context.Context) {
	s.ctx = ctx
	records, err := s.store.List(ctx)
	if err != nil {
		s.log.Warnw("fetch players failed", "err", err)
	} else {
		s.applyRoster(records)
	}
	s.lastSync = s.now()
}

// Fetch asks the store for the roster without waiting. A successful reply
// replaces the roster on a later Step; a failed one only gets logged.
func (s *Session) Fetch(ctx context.Context) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		records, err := s.store.List(ctx)
		if err != nil {
			s.log.Warnw("fetch players failed", "err", err)
			return
		}
		s.messages <- rosterFetched{records: records}
	}()
}

// Push sends p for ID without waiting. Failures are logged and dropped.
func (s *Session) Push(ctx context.Context, ID object.ID, p store.Patch) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		if err := s.store.Update(ctx, ID, p); err != nil {
			s.log.Warnw("update player failed", "id", ID, "err", err)
		}
	}()
}

// Wait blocks until every request started by Fetch or Push has finished.
// Their results still need a Step to be applied.
func (s *Session) Wait() {
	s.inflight.Wait()
}

// Step runs one frame: apply finished fetches, redraw, move the assigned
// entity, and fetch again once the sync interval has passed.
func (s *Session) Step(surface object.Surface) {
	s.drain()

	surface.Clear()
	s.roster.ForEachEntity(func(e *object.Entity) {
		e.Draw(surface)
	})

	if s.state == Assigned && !s.input.IsZero() {
		if e := s.roster.Entity(s.assigned); e != nil {
			e.X += s.input.X
			e.Y += s.input.Y
			s.Push(s.ctx, e.ID, store.Position(e.X, e.Y))
		}
	}

	now := s.now()
	if now.Sub(s.lastSync) > s.syncInterval {
		s.Fetch(s.ctx)
		s.lastSync = now
	}
}

// KeyDown and KeyUp track the held movement keys. The last key pressed on
// an axis wins; releasing either key on an axis stops it.
func (s *Session) KeyDown(key string) {
	switch key {
	case "d":
		s.input.X = s.speed
	case "a":
		s.input.X = -s.speed
	case "w":
		s.input.Y = -s.speed
	case "s":
		s.input.Y = s.speed
	}
}

func (s *Session) KeyUp(key string) {
	switch key {
	case "a", "d":
		s.input.X = 0
	case "w", "s":
		s.input.Y = 0
	}
}

// Release gives the assigned entity back. The notification is a beacon:
// it does not block and may never reach the store.
func (s *Session) Release() {
	if s.state != Assigned {
		return
	}
	s.state = Released
	s.store.Beacon(s.assigned, store.Using(false))
	s.log.Infow("player released", "id", s.assigned)
}

func (s *Session) applyRoster(records []store.Record) {
	entities := make([]*object.Entity, 0, len(records))
	for _, r := range records {
		entities = append(entities, object.New(r.X, r.Y, r.ID, r.Using))
	}
	s.roster.Replace(entities)
	s.claim()
}

func (s *Session) claim() {
	if s.state != Unassigned {
		return
	}
	free := s.roster.FirstFree()
	if free == nil {
		s.log.Debugw("no free players, observing", "players", s.roster.Len())
		return
	}
	free.Occupied = true
	s.assigned = free.ID
	s.state = Assigned
	s.log.Infow("player assigned", "id", free.ID)
	s.Push(s.ctx, free.ID, store.Using(true))
}
