package notify

import "log/slog"

// Channel delivers an already formatted message. It knows nothing about severity.
type Channel interface {
	Send(message string)
	Kind() string
}

// logChannel writes messages to a structured logger under a channel kind.
type logChannel struct {
	kind   string
	label  string
	logger *slog.Logger
}

func newLogChannel(kind, label string, logger *slog.Logger) logChannel {
	if logger == nil {
		logger = slog.Default()
	}
	return logChannel{kind: kind, label: label, logger: logger}
}

func (c logChannel) Send(message string) {
	c.logger.Info(c.label, "channel", c.kind, "message", message)
}

func (c logChannel) Kind() string { return c.kind }

// PushChannel delivers mobile push notifications.
type PushChannel struct{ logChannel }

func NewPushChannel(logger *slog.Logger) *PushChannel {
	return &PushChannel{newLogChannel("PUSH", "push notification", logger)}
}

// EmailChannel delivers email notifications.
type EmailChannel struct{ logChannel }

func NewEmailChannel(logger *slog.Logger) *EmailChannel {
	return &EmailChannel{newLogChannel("EMAIL", "email notification", logger)}
}

// VoiceChannel delivers spoken notifications through a voice assistant.
type VoiceChannel struct{ logChannel }

func NewVoiceChannel(logger *slog.Logger) *VoiceChannel {
	return &VoiceChannel{newLogChannel("VOICE", "voice notification", logger)}
}

// ChannelFunc adapts a function to the Channel interface.
type ChannelFunc struct {
	KindName string
	Fn       func(message string)
}

func (c ChannelFunc) Send(message string) {
	if c.Fn != nil {
		c.Fn(message)
	}
}

func (c ChannelFunc) Kind() string { return c.KindName }

var (
	_ Channel = (*PushChannel)(nil)
	_ Channel = (*EmailChannel)(nil)
	_ Channel = (*VoiceChannel)(nil)
	_ Channel = ChannelFunc{}
)
