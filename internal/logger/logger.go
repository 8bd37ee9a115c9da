package logger

import (
	"fmt"
	"io"
	"log"
)

type logger struct {
	traceLogger *log.Logger
	debugLogger *log.Logger
	infoLogger  *log.Logger
	errorLogger *log.Logger
}

func NewLogger(level Level, out io.Writer) *logger {
	l := &logger{}
	flag := log.LstdFlags | log.Lshortfile

	if level >= LevelTrace {
		l.traceLogger = log.New(out, "TRACE:", flag)
	}
	if level >= LevelDebug {
		l.debugLogger = log.New(out, "DEBUG:", flag)
	}
	if level >= LevelInfo {
		l.infoLogger = log.New(out, "INFO :", flag)
	}
	if level >= LevelError {
		l.errorLogger = log.New(out, "ERROR:", flag)
	}
	return l
}

func (l *logger) Trace(v ...any) {
	if l.traceLogger != nil {
		_ = l.traceLogger.Output(2, fmt.Sprintln(v...))
	}
}

func (l *logger) Debug(v ...any) {
	if l.debugLogger != nil {
		_ = l.debugLogger.Output(2, fmt.Sprintln(v...))
	}
}

func (l *logger) Info(v ...any) {
	if l.infoLogger != nil {
		_ = l.infoLogger.Output(2, fmt.Sprintln(v...))
	}
}

func (l *logger) Error(v ...any) {
	if l.errorLogger != nil {
		_ = l.errorLogger.Output(2, fmt.Sprintln(v...))
	}
}

func (l *logger) Tracef(format string, v ...any) {
	if l.traceLogger != nil {
		_ = l.traceLogger.Output(2, fmt.Sprintf(format, v...))
	}
}

func (l *logger) Debugf(format string, v ...any) {
	if l.debugLogger != nil {
		_ = l.debugLogger.Output(2, fmt.Sprintf(format, v...))
	}
}

func (l *logger) Infof(format string, v ...any) {
	if l.infoLogger != nil {
		_ = l.infoLogger.Output(2, fmt.Sprintf(format, v...))
	}
}

func (l *logger) Errorf(format string, v ...any) {
	if l.errorLogger != nil {
		_ = l.errorLogger.Output(2, fmt.Sprintf(format, v...))
	}
}
