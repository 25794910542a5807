// Package logger records session events in newline delimited JSON so
// sessions can be audited after the fact.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"
)

// EventType discriminates log entries.
type EventType string

const (
	EventSessionStart     EventType = "session_start"
	EventCommandRun       EventType = "command_run"
	EventBackgroundLaunch EventType = "background_launch"
	EventSignalForwarded  EventType = "signal_forwarded"
	EventSessionEnd       EventType = "session_end"
)

// LogEntry is a single event in the session log.
type LogEntry struct {
	TimestampMicros int64     `json:"timestamp_micros"`
	SessionID       string    `json:"session_id"`
	Event           EventType `json:"event"`

	// Argv of the launched command, if any.
	Argv []string `json:"argv,omitempty"`
	// PID of the launched process or signaled process group.
	PID int `json:"pid,omitempty"`
	// Signal name for forwarded signals.
	Signal string `json:"signal,omitempty"`

	// Cumulative child CPU time, reported once at session end.
	UserTimeSecs int64 `json:"user_time_secs,omitempty"`
	SysTimeSecs  int64 `json:"sys_time_secs,omitempty"`
}

// LogRecorder is a callback that stores events in an external datastore.
type LogRecorder func(le *LogEntry) error

// Logger captures interaction events for the shell session.
type Logger struct {
	Record LogRecorder
}

// NewJSONLinesRecorder creates a Logger that exports logs in newline
// delimited JSON object format.
func NewJSONLinesRecorder(w io.Writer) *Logger {
	return &Logger{
		Record: func(le *LogEntry) error {
			entry, err := json.Marshal(le)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
	}
}

// Nop returns a SessionLogger that discards everything.
func Nop() *SessionLogger {
	l := &Logger{Record: func(le *LogEntry) error { return nil }}
	return l.NewSession()
}

// NewSession creates a logger with attached session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{logger: l, sessionID: fmt.Sprintf("%d", rand.Uint64())}
}

// SessionLogger logs events with a shared session ID.
type SessionLogger struct {
	logger    *Logger
	sessionID string
}

func (l *SessionLogger) record(entry *LogEntry) error {
	entry.TimestampMicros = time.Now().UnixMicro()
	entry.SessionID = l.sessionID
	return l.logger.Record(entry)
}

// SessionStart records the beginning of an interactive session.
func (l *SessionLogger) SessionStart() error {
	return l.record(&LogEntry{Event: EventSessionStart})
}

// CommandRun records a foreground command launch.
func (l *SessionLogger) CommandRun(argv []string, pid int) error {
	return l.record(&LogEntry{Event: EventCommandRun, Argv: argv, PID: pid})
}

// BackgroundLaunch records a command sent to the background.
func (l *SessionLogger) BackgroundLaunch(argv []string, pid int) error {
	return l.record(&LogEntry{Event: EventBackgroundLaunch, Argv: argv, PID: pid})
}

// SignalForwarded records a signal relayed to the foreground process group.
func (l *SessionLogger) SignalForwarded(signal string, pgid int) error {
	return l.record(&LogEntry{Event: EventSignalForwarded, Signal: signal, PID: pgid})
}

// SessionEnd records shutdown along with the session's CPU accounting.
func (l *SessionLogger) SessionEnd(userTime, sysTime time.Duration) error {
	return l.record(&LogEntry{
		Event:        EventSessionEnd,
		UserTimeSecs: int64(userTime.Seconds()),
		SysTimeSecs:  int64(sysTime.Seconds()),
	})
}
