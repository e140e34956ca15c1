/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/go-logr/logr"

	"github.com/gogenerics/playground/commonerrors"
	"github.com/gogenerics/playground/value"
)

const (
	KeyLogSource    = "source"
	KeyLoggerSource = "logger-source"
)

type logrLogger struct {
	mu     sync.RWMutex
	base   logr.Logger
	logger logr.Logger
	source string
	close  func() error
}

func (l *logrLogger) getLogger() logr.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.logger
}

func (l *logrLogger) Close() error {
	if l.close == nil {
		return nil
	}
	return l.close()
}

func (l *logrLogger) Check() error {
	return nil
}

func (l *logrLogger) SetLogSource(source string) error {
	if value.IsEmpty(source) {
		return commonerrors.ErrNoLogSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.source = source
	l.logger = l.base.WithValues(KeyLogSource, source)
	return nil
}

func (l *logrLogger) SetLoggerSource(source string) error {
	if value.IsEmpty(source) {
		return commonerrors.ErrNoLoggerSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.base = l.base.WithName(source)
	l.logger = l.base
	if l.source != "" {
		l.logger = l.base.WithValues(KeyLogSource, l.source)
	}
	return nil
}

func (l *logrLogger) Log(output ...interface{}) {
	l.getLogger().Info(strings.TrimSpace(fmt.Sprintln(output...)))
}

func (l *logrLogger) LogError(err ...interface{}) {
	var actualErr error
	if len(err) > 0 {
		if e, ok := err[0].(error); ok {
			actualErr = e
			err = err[1:]
		}
	}
	l.getLogger().Error(actualErr, strings.TrimSpace(fmt.Sprintln(err...)))
}

// NewLogrLogger creates loggers based on a logr implementation (https://github.com/go-logr/logr)
func NewLogrLogger(logrImpl logr.Logger, loggerSource string) (loggers Loggers, err error) {
	return NewLogrLoggerWithClose(logrImpl, loggerSource, nil)
}

// NewLogrLoggerWithClose is similar to NewLogrLogger but also calls closeFunc when the loggers are closed.
func NewLogrLoggerWithClose(logrImpl logr.Logger, loggerSource string, closeFunc func() error) (loggers Loggers, err error) {
	loggers = &logrLogger{base: logrImpl, logger: logrImpl, close: closeFunc}
	err = loggers.SetLoggerSource(loggerSource)
	return
}

// GetLogrLoggerFromContext returns the logr logger stored in a context, if any.
func GetLogrLoggerFromContext(ctx context.Context) (logger logr.Logger, err error) {
	logger, err = logr.FromContext(ctx)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrNoLogger, err, "")
	}
	return
}
