// Package notify pairs a severity framing with a delivery channel, so any
// severity can go out over any channel.
package notify

import (
	"errors"
	"fmt"
	"strings"
)

// Severity classifies how a message is framed.
type Severity string

const (
	SeverityUrgent    Severity = "urgent"
	SeverityScheduled Severity = "scheduled"
)

// ErrUnknownSeverity is returned by ParseSeverity.
var ErrUnknownSeverity = errors.New("unknown severity")

// ParseSeverity accepts "urgent" or "scheduled" in any case.
func ParseSeverity(s string) (Severity, error) {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityUrgent:
		return SeverityUrgent, nil
	case SeverityScheduled:
		return SeverityScheduled, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSeverity, s)
	}
}

// Prefix is prepended to every message sent at this severity.
func (s Severity) Prefix() string {
	switch s {
	case SeverityUrgent:
		return "URGENT: "
	case SeverityScheduled:
		return "Scheduled Update: "
	default:
		return ""
	}
}

// Policy frames raw text for its severity and hands it to its channel.
type Policy struct {
	severity Severity
	channel  Channel
}

func NewPolicy(severity Severity, channel Channel) *Policy {
	return &Policy{severity: severity, channel: channel}
}

func NewUrgent(channel Channel) *Policy { return NewPolicy(SeverityUrgent, channel) }

func NewScheduled(channel Channel) *Policy { return NewPolicy(SeverityScheduled, channel) }

func (p *Policy) Severity() Severity { return p.severity }

func (p *Policy) Channel() Channel { return p.channel }

// Notify sends the prefixed text. A policy without a channel drops the message.
func (p *Policy) Notify(rawText string) {
	if p == nil || p.channel == nil {
		return
	}
	p.channel.Send(p.severity.Prefix() + rawText)
}
