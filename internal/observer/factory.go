package observer

import (
	"fmt"
	"log/slog"

	"github.com/i474232898/weather-station/internal/notify"
)

// Factory builds a family of observers for one medium.
type Factory interface {
	CreateDisplay() Observer
	CreateNotifier() Observer
	CreateController() Observer
}

type family struct {
	medium     Medium
	display    string
	notifier   string
	controller string
	policy     func(logger *slog.Logger) *notify.Policy
	logger     *slog.Logger
}

func (f family) create(name string, opts ...Option) Observer {
	return NewDisplay(name, f.medium, append([]Option{WithLogger(f.logger)}, opts...)...)
}

func (f family) CreateDisplay() Observer { return f.create(f.display) }

func (f family) CreateNotifier() Observer {
	return f.create(f.notifier, WithPolicy(f.policy(f.logger)))
}

func (f family) CreateController() Observer { return f.create(f.controller) }

// MobileFactory: notifier sends urgent push notifications.
func MobileFactory(logger *slog.Logger) Factory {
	return family{
		medium:     MediumMobile,
		display:    "Weather Display",
		notifier:   "Push Notifications",
		controller: "Quick Controls",
		policy: func(l *slog.Logger) *notify.Policy {
			return notify.NewUrgent(notify.NewPushChannel(l))
		},
		logger: logger,
	}
}

// WebFactory: notifier sends scheduled email digests.
func WebFactory(logger *slog.Logger) Factory {
	return family{
		medium:     MediumWeb,
		display:    "Dashboard",
		notifier:   "Alert Panel",
		controller: "Settings Panel",
		policy: func(l *slog.Logger) *notify.Policy {
			return notify.NewScheduled(notify.NewEmailChannel(l))
		},
		logger: logger,
	}
}

// SmartHomeFactory: notifier speaks urgent messages through the voice channel.
func SmartHomeFactory(logger *slog.Logger) Factory {
	return family{
		medium:     MediumSmartHome,
		display:    "Wall Display",
		notifier:   "Voice Assistant",
		controller: "Climate Control",
		policy: func(l *slog.Logger) *notify.Policy {
			return notify.NewUrgent(notify.NewVoiceChannel(l))
		},
		logger: logger,
	}
}

// FactoryFor selects the factory for a medium.
func FactoryFor(m Medium, logger *slog.Logger) (Factory, error) {
	switch m {
	case MediumMobile:
		return MobileFactory(logger), nil
	case MediumWeb:
		return WebFactory(logger), nil
	case MediumSmartHome:
		return SmartHomeFactory(logger), nil
	default:
		return nil, fmt.Errorf("no observer factory for medium %q", m)
	}
}
