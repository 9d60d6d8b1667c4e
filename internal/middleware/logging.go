package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging creates middleware that logs every incoming update and any
// handler error, so a failing handler never goes unnoticed.
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			var userID int64
			if c.Sender() != nil {
				userID = c.Sender().ID
			}

			err := next(c)
			if err != nil {
				logger.Error("Handler failed",
					zap.Int64("user_id", userID),
					zap.Error(err),
				)
			}
			return err
		}
	}
}
