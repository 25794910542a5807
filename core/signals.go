package core

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"

	"github.com/AhnafulH/unix-shell/core/logger"
)

// SignalController routes interactive interrupt and stop signals. While
// a foreground process group is registered with the session the
// identical signal is forwarded to the whole group; otherwise the
// prompt is redrawn so the user is not left without feedback.
//
// The controller never reaps or clears the foreground job itself:
// termination is observed by the blocked wait in the launcher.
type SignalController struct {
	session *Session
	log     *logger.SessionLogger
	redraw  func()

	// kill is swappable for tests.
	kill func(pid int, sig unix.Signal) error

	ch chan os.Signal
}

func NewSignalController(session *Session, log *logger.SessionLogger, redraw func()) *SignalController {
	return &SignalController{
		session: session,
		log:     log,
		redraw:  redraw,
		kill:    unix.Kill,
	}
}

// Start traps SIGINT and SIGTSTP for the life of the process and
// dispatches them from a dedicated goroutine.
func (c *SignalController) Start() {
	c.ch = make(chan os.Signal, 1)
	signal.Notify(c.ch, unix.SIGINT, unix.SIGTSTP)
	go func() {
		for sig := range c.ch {
			c.handle(sig)
		}
	}()
}

// Stop stops signal delivery, restoring default dispositions.
func (c *SignalController) Stop() {
	if c.ch == nil {
		return
	}
	signal.Stop(c.ch)
	close(c.ch)
	c.ch = nil
}

func (c *SignalController) handle(sig os.Signal) {
	num, ok := sig.(unix.Signal)
	if !ok {
		return
	}

	if pgid, running := c.session.Foreground(); running {
		// Negative pid targets the whole foreground process group, not
		// just its leader.
		_ = c.kill(-pgid, num)
		c.log.SignalForwarded(num.String(), pgid)
		return
	}

	c.redraw()
}
