package middleware

import (
	"fmt"
	"time"

	"katalog/pkg/console"

	"go.uber.org/zap"
)

// Logger records every menu action with its duration and outcome.
func Logger(log *zap.Logger) console.Middleware {
	return func(next console.HandlerFunc) console.HandlerFunc {
		return func(c *console.Ctx) error {
			start := time.Now()
			err := next(c)

			fields := []zap.Field{
				zap.String("action", c.Action()),
				zap.Duration("took", time.Since(start)),
			}
			if err != nil {
				log.Warn("action failed", append(fields, zap.Error(err))...)
				return err
			}
			log.Info("action done", fields...)
			return nil
		}
	}
}

// Recover turns a panic inside an action into an error so the menu keeps
// running.
func Recover(log *zap.Logger) console.Middleware {
	return func(next console.HandlerFunc) console.HandlerFunc {
		return func(c *console.Ctx) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error("action panicked", zap.String("action", c.Action()), zap.Any("panic", r), zap.Stack("stack"))
					err = fmt.Errorf("unexpected failure in %q: %v", c.Action(), r)
				}
			}()
			return next(c)
		}
	}
}
