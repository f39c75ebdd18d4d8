package notify

import (
	"sort"
	"sync"
	"time"
)

// Phase is the visible state of a live banner.
type Phase string

// Banner phases.
const (
	PhasePending Phase = "pending"
	PhaseShown   Phase = "shown"
	PhaseHiding  Phase = "hiding"
)

// Scheduler runs f once after d. time.AfterFunc satisfies it through
// AfterFunc.
type Scheduler func(d time.Duration, f func())

// AfterFunc schedules with the runtime timer.
func AfterFunc(d time.Duration, f func()) { time.AfterFunc(d, f) }

// Live is a banner currently on a Surface.
type Live struct {
	Notification Notification `json:"notification"`
	Phase        Phase        `json:"phase"`
	Inserted     time.Time    `json:"inserted"`

	seq uint64
}

// Surface is a set of live banners. Every Notify call inserts an independent
// banner that owns its own timers; there is no queue, no deduplication and
// no limit on simultaneous banners, and pending timers are never cancelled.
type Surface struct {
	schedule Scheduler
	now      func() time.Time

	mu   sync.Mutex
	seq  uint64
	live map[string]*Live
}

// NewSurface returns an empty surface. A nil scheduler means AfterFunc.
func NewSurface(schedule Scheduler) *Surface {
	if schedule == nil {
		schedule = AfterFunc
	}
	return &Surface{
		schedule: schedule,
		now:      time.Now,
		live:     make(map[string]*Live),
	}
}

// Notify inserts a banner and schedules it to show, hide and be removed.
func (s *Surface) Notify(message string, duration time.Duration) Notification {
	n := New(message, duration)
	tl := n.Timeline()

	s.mu.Lock()
	s.seq++
	s.live[n.ID] = &Live{Notification: n, Phase: PhasePending, Inserted: s.now(), seq: s.seq}
	s.mu.Unlock()

	s.schedule(tl.ShowAt, func() { s.setPhase(n.ID, PhaseShown) })
	s.schedule(tl.HideAt, func() {
		s.setPhase(n.ID, PhaseHiding)
		s.schedule(FadeOut, func() { s.remove(n.ID) })
	})

	return n
}

// Active returns the live banners, oldest first.
func (s *Surface) Active() []Live {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Live, 0, len(s.live))
	for _, l := range s.live {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// Len returns the number of live banners.
func (s *Surface) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.live)
}

func (s *Surface) setPhase(id string, phase Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.live[id]; ok {
		l.Phase = phase
	}
}

func (s *Surface) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.live, id)
}
