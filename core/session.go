package core

import (
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// noProcess is the sentinel for an empty background slot.
const noProcess = -1

// Session holds the mutable state shared between the read-eval loop,
// the launcher and the signal controller: the foreground process group,
// the tracked background process and the child CPU time totals.
//
// The foreground pgid is read from the signal handling goroutine while
// the main flow blocks in wait, so it is atomic. It is set before the
// blocking wait begins and cleared only after the wait returns, closing
// the window where a signal aimed at a foreground command could be
// misdirected at the shell.
type Session struct {
	foreground atomic.Int64

	mu sync.Mutex
	// Only the most recent background process is tracked, a documented
	// limitation carried over from the original design. It is never
	// reaped early, only signaled at shutdown.
	background int
	userTime   time.Duration
	sysTime    time.Duration
}

func NewSession() *Session {
	return &Session{background: noProcess}
}

// SetForeground registers the process group of the running foreground
// command. Must happen before the launcher blocks.
func (s *Session) SetForeground(pgid int) {
	s.foreground.Store(int64(pgid))
}

// ClearForeground unregisters the foreground process group. Must happen
// only after the blocking wait has returned.
func (s *Session) ClearForeground() {
	s.foreground.Store(0)
}

// Foreground reports the registered foreground process group, if any.
func (s *Session) Foreground() (pgid int, ok bool) {
	v := s.foreground.Load()
	return int(v), v != 0
}

// TrackBackground stores a background process id in the single tracked
// slot, displacing any previous occupant.
func (s *Session) TrackBackground(pid int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.background = pid
}

// Background reports the tracked background process id, if any.
func (s *Session) Background() (pid int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.background, s.background != noProcess
}

// Accrue adds a reaped child's CPU time to the session totals.
//
// The original design re-added the cumulative RUSAGE_CHILDREN figure
// after every wait, double counting earlier children. Accruing each
// child's own times from its wait status keeps the totals exact and
// monotone.
func (s *Session) Accrue(state *os.ProcessState) {
	if state == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userTime += state.UserTime()
	s.sysTime += state.SystemTime()
}

// Totals reports the cumulative user and system CPU time of all
// waited-on children.
func (s *Session) Totals() (userTime, sysTime time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userTime, s.sysTime
}
