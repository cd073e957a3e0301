package observer

import (
	"fmt"
	"log/slog"

	"github.com/i474232898/weather-station/internal/notify"
	"github.com/i474232898/weather-station/internal/weather"
)

// Observer receives every reading a station stores.
type Observer interface {
	Update(r weather.Reading)
	Name() string
}

// Medium is the surface a display observer renders to.
type Medium string

const (
	MediumMobile    Medium = "mobile"
	MediumWeb       Medium = "web"
	MediumSmartHome Medium = "smart-home"
)

// ParseMedium accepts the medium names used in configuration and requests.
func ParseMedium(s string) (Medium, error) {
	switch Medium(s) {
	case MediumMobile, MediumWeb, MediumSmartHome:
		return Medium(s), nil
	default:
		return "", fmt.Errorf("unknown medium %q", s)
	}
}

// Display renders readings for its medium and, when it owns a policy,
// forwards the rendered text as a notification.
type Display struct {
	name   string
	medium Medium
	policy *notify.Policy
	logger *slog.Logger
}

type Option func(*Display)

func WithPolicy(p *notify.Policy) Option {
	return func(d *Display) { d.policy = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(d *Display) { d.logger = l }
}

func NewDisplay(name string, medium Medium, opts ...Option) *Display {
	d := &Display{name: name, medium: medium}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

func (d *Display) Name() string { return d.name }

func (d *Display) Medium() Medium { return d.medium }

// Policy returns the bound notification policy, or nil.
func (d *Display) Policy() *notify.Policy { return d.policy }

func (d *Display) Update(r weather.Reading) {
	text := r.String()
	d.logger.Info("observer received reading", "observer", d.name, "medium", d.medium, "reading", text)
	if d.policy != nil {
		d.policy.Notify(text)
	}
}

var _ Observer = (*Display)(nil)
