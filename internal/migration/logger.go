package migration

import (
	"strings"

	"go.uber.org/zap"
)

// zapLogger routes golang-migrate output through zap
type zapLogger struct {
	logger  *zap.Logger
	verbose bool
}

func (l *zapLogger) Printf(format string, v ...interface{}) {
	l.logger.Sugar().Infof(strings.TrimRight(format, "\n"), v...)
}

func (l *zapLogger) Verbose() bool {
	return l.verbose
}
