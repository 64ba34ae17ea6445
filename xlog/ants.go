package xlog

import (
	antsv2 "github.com/panjf2000/ants/v2"
	"go.uber.org/zap"
)

var _ antsv2.Logger = (*AntsXLogger)(nil)

// AntsXLogger routes the ants pool messages, mostly worker panics,
// to the "ants" component logger at error level.
type AntsXLogger struct {
	logger *zap.SugaredLogger
}

func (l *AntsXLogger) Printf(format string, args ...any) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Errorf(format, args...)
}

func NewAntsXLogger(logger XLogger) *AntsXLogger {
	return &AntsXLogger{
		logger: logger.Component("ants").Sugar(),
	}
}
