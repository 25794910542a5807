package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"

	"github.com/AhnafulH/unix-shell/core/logger"
)

type killRecorder struct {
	pids    []int
	signals []unix.Signal
}

func (k *killRecorder) kill(pid int, sig unix.Signal) error {
	k.pids = append(k.pids, pid)
	k.signals = append(k.signals, sig)
	return nil
}

func newTestController(session *Session) (*SignalController, *killRecorder, *int) {
	redraws := 0
	controller := NewSignalController(session, logger.Nop(), func() { redraws++ })
	recorder := &killRecorder{}
	controller.kill = recorder.kill
	return controller, recorder, &redraws
}

func TestSignalForwardedToForegroundGroup(t *testing.T) {
	session := NewSession()
	session.SetForeground(4321)
	controller, recorder, redraws := newTestController(session)

	controller.handle(unix.SIGINT)

	// The identical signal goes to the negative of the pgid, targeting
	// the whole foreground group.
	assert.Equal(t, []int{-4321}, recorder.pids)
	assert.Equal(t, []unix.Signal{unix.SIGINT}, recorder.signals)
	assert.Equal(t, 0, *redraws)

	controller.handle(unix.SIGTSTP)
	assert.Equal(t, []unix.Signal{unix.SIGINT, unix.SIGTSTP}, recorder.signals)
}

func TestSignalHandlerDoesNotClearJob(t *testing.T) {
	session := NewSession()
	session.SetForeground(4321)
	controller, _, _ := newTestController(session)

	controller.handle(unix.SIGINT)

	// Termination is observed by the blocked wait, not the handler.
	pgid, running := session.Foreground()
	assert.True(t, running)
	assert.Equal(t, 4321, pgid)
}

func TestSignalRedrawsPromptWhenIdle(t *testing.T) {
	controller, recorder, redraws := newTestController(NewSession())

	controller.handle(unix.SIGINT)
	controller.handle(unix.SIGTSTP)

	assert.Empty(t, recorder.pids, "no process may be signaled when idle")
	assert.Equal(t, 2, *redraws)
}

func TestSignalStartStop(t *testing.T) {
	controller, _, _ := newTestController(NewSession())

	controller.Start()
	controller.Stop()
	// Stop twice is fine.
	controller.Stop()
}
