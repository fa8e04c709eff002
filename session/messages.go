package session

import "onlinegame/store"

// message is a network result waiting to be applied on the frame goroutine.
type message interface {
	apply(s *Session)
}

type rosterFetched struct {
	records []store.Record
}

func (m rosterFetched) apply(s *Session) {
	s.applyRoster(m.records)
}

// drain applies every queued message without blocking.
func (s *Session) drain() {
	for {
		select {
		case m := <-s.messages:
			m.apply(s)
		default:
			return
		}
	}
}
