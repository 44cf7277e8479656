package menu

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

type Command struct {
	Key  string
	Name string
	Run  func(ctx context.Context) error
}

// Decorador de timing: cada comando deja su duración y estado en el
// log estructurado. Los errores de dominio no se loguean aparte; son
// resultado normal de la operación y la acción ya los mostró.
func WithTiming(c Command) Command {
	return Command{
		Key:  c.Key,
		Name: c.Name,
		Run: func(ctx context.Context) error {
			start := time.Now()
			err := c.Run(ctx)
			dur := time.Since(start).Round(time.Millisecond)

			ev := logger.Info()
			if err != nil {
				ev = logger.Warn().Err(err)
			}
			ev.Str("cmd", c.Key).Dur("took", dur).Msg("command")
			return err
		},
	}
}
