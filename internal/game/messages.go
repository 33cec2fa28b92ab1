package game

import (
	"time"

	"github.com/google/uuid"
)

// Severity controls the color a message is rendered with.
type Severity uint8

const (
	SevInfo    Severity = iota // light gray
	SevSuccess                 // green
	SevWarning                 // orange
	SevError                   // red
)

// Message is a single entry in the notification log.
type Message struct {
	ID        uuid.UUID
	Text      string
	Severity  Severity
	CreatedAt time.Time
}

// MessageLog is a bounded FIFO of notifications with a timed lifecycle:
// each message fades in, holds, fades out, and is purged once its total
// display duration has elapsed.
type MessageLog struct {
	entries []Message
	maxSize int
	fadeIn  time.Duration
	hold    time.Duration
	fadeOut time.Duration
}

// NewMessageLog creates a log that keeps at most maxSize live messages.
func NewMessageLog(maxSize int, fadeIn, hold, fadeOut time.Duration) *MessageLog {
	return &MessageLog{
		entries: make([]Message, 0, maxSize),
		maxSize: maxSize,
		fadeIn:  fadeIn,
		hold:    hold,
		fadeOut: fadeOut,
	}
}

func (l *MessageLog) lifetime() time.Duration { return l.fadeIn + l.hold + l.fadeOut }

// Add appends a message, evicting the oldest if the log is full.
func (l *MessageLog) Add(now time.Time, text string, sev Severity) {
	msg := Message{ID: uuid.New(), Text: text, Severity: sev, CreatedAt: now}
	if len(l.entries) >= l.maxSize {
		copy(l.entries, l.entries[1:])
		l.entries[len(l.entries)-1] = msg
	} else {
		l.entries = append(l.entries, msg)
	}
}

// Active purges expired messages and returns the ones still visible,
// oldest first.
func (l *MessageLog) Active(now time.Time) []Message {
	// Entries are appended in time order, so expired ones form a prefix.
	cut := 0
	for cut < len(l.entries) && now.Sub(l.entries[cut].CreatedAt) >= l.lifetime() {
		cut++
	}
	if cut > 0 {
		l.entries = append(l.entries[:0], l.entries[cut:]...)
	}
	return l.entries
}

// Alpha returns the fade envelope for a message at the given instant:
// 0 before creation or after expiry, ramping 0→1 during fade-in and
// 1→0 during fade-out.
func (l *MessageLog) Alpha(m Message, now time.Time) float64 {
	age := now.Sub(m.CreatedAt)
	switch {
	case age < 0 || age >= l.lifetime():
		return 0
	case age < l.fadeIn:
		return float64(age) / float64(l.fadeIn)
	case age < l.fadeIn+l.hold:
		return 1
	default:
		left := l.lifetime() - age
		return float64(left) / float64(l.fadeOut)
	}
}

// Clear drops every message.
func (l *MessageLog) Clear() {
	l.entries = l.entries[:0]
}
