package escalate

import (
	"github.com/sirupsen/logrus"
)

// Sink receives Global banners. *slog.Logger satisfies it.
type Sink interface {
	Error(msg string, args ...any)
}

type SinkFunc func(msg string, args ...any)

func (f SinkFunc) Error(msg string, args ...any) {
	f(msg, args...)
}

// LogrusSink adapts a logrus logger. args are key/value pairs, as with slog.
// A non-string key or a trailing value without a key is stored under
// "!BADKEY".
func LogrusSink(l logrus.FieldLogger) Sink {
	return SinkFunc(func(msg string, args ...any) {
		fields := make(logrus.Fields, len(args)/2+1)
		for len(args) > 0 {
			key, ok := args[0].(string)
			if !ok || len(args) == 1 {
				fields[badKey] = args[0]
				args = args[1:]
				continue
			}
			fields[key] = args[1]
			args = args[2:]
		}
		l.WithFields(fields).Error(msg)
	})
}

const badKey = "!BADKEY"
