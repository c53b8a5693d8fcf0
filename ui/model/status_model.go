package model

import (
	"time"
)

// StatusLevel classifies a status message for styling.
type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusWarn
	StatusError
)

// StatusModel holds the transient status line. Info messages expire after TTL;
// warnings and errors stay until replaced or cleared.
// The zero value is ready to use and never expires messages.
type StatusModel struct {
	TTL     time.Duration
	text    string
	level   StatusLevel
	shownAt time.Time
	dirty   bool
}

// NewStatusModel returns a StatusModel with the given info message lifetime.
func NewStatusModel(ttl time.Duration) *StatusModel { return &StatusModel{TTL: ttl} }

// Set replaces the message.
func (m *StatusModel) Set(level StatusLevel, text string, now time.Time) {
	if m == nil {
		return
	}
	m.text, m.level, m.shownAt = text, level, now
	m.dirty = true
}

// Clear removes the message.
func (m *StatusModel) Clear() {
	if m == nil || m.text == "" {
		return
	}
	m.text = ""
	m.dirty = true
}

// OnTick expires info messages older than TTL.
func (m *StatusModel) OnTick(now time.Time) {
	if m == nil || m.text == "" || m.level != StatusInfo || m.TTL <= 0 {
		return
	}
	if now.Sub(m.shownAt) >= m.TTL {
		m.text = ""
		m.dirty = true
	}
}

// Values returns the current message and level.
func (m *StatusModel) Values() (string, StatusLevel) {
	if m == nil {
		return "", StatusInfo
	}
	return m.text, m.level
}

// TakeDirty reports whether the message changed since the last call.
func (m *StatusModel) TakeDirty() bool {
	if m == nil {
		return false
	}
	d := m.dirty
	m.dirty = false
	return d
}
