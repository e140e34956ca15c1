/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/gogenerics/playground/commonerrors"
	"github.com/gogenerics/playground/value"
)

type logrusLogger struct {
	mu    sync.RWMutex
	entry *logrus.Entry
}

func (l *logrusLogger) getEntry() *logrus.Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.entry
}

func (l *logrusLogger) Check() error {
	if l.getEntry() == nil {
		return commonerrors.ErrNoLogger
	}
	return nil
}

func (l *logrusLogger) SetLogSource(source string) error {
	if value.IsEmpty(source) {
		return commonerrors.ErrNoLogSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entry = l.entry.WithField(KeyLogSource, source)
	return nil
}

func (l *logrusLogger) SetLoggerSource(source string) error {
	if value.IsEmpty(source) {
		return commonerrors.ErrNoLoggerSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entry = l.entry.WithField(KeyLoggerSource, source)
	return nil
}

func (l *logrusLogger) Log(output ...interface{}) {
	l.getEntry().Info(strings.TrimSpace(fmt.Sprintln(output...)))
}

func (l *logrusLogger) LogError(err ...interface{}) {
	l.getEntry().Error(strings.TrimSpace(fmt.Sprintln(err...)))
}

func (l *logrusLogger) Close() error {
	return nil
}

// NewLogrusLogger creates a logger to logrus logger (https://github.com/Sirupsen/logrus)
func NewLogrusLogger(logrusL *logrus.Logger, loggerSource string) (loggers Loggers, err error) {
	if logrusL == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	loggers = &logrusLogger{entry: logrus.NewEntry(logrusL)}
	err = loggers.SetLoggerSource(loggerSource)
	return
}
