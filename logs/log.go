/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"log"
	"sync"

	"github.com/gogenerics/playground/commonerrors"
	"github.com/gogenerics/playground/value"
)

// GenericLoggers defines loggers based on a pair of standard library loggers.
type GenericLoggers struct {
	Output *log.Logger
	Error  *log.Logger
	mu     sync.RWMutex
	source string
}

// Check checks whether the loggers are correctly defined or not.
func (l *GenericLoggers) Check() error {
	if l.Error == nil || l.Output == nil {
		return commonerrors.ErrNoLogger
	}
	return nil
}

func (l *GenericLoggers) SetLogSource(source string) error {
	if value.IsEmpty(source) {
		return commonerrors.ErrNoLogSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.source = source
	return nil
}

func (l *GenericLoggers) SetLoggerSource(source string) error {
	if value.IsEmpty(source) {
		return commonerrors.ErrNoLoggerSource
	}
	prefix := fmt.Sprintf("[%v] ", source)
	if l.Output != nil {
		l.Output.SetPrefix(prefix)
	}
	if l.Error != nil {
		l.Error.SetPrefix(prefix)
	}
	return nil
}

func (l *GenericLoggers) getSource() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.source
}

func (l *GenericLoggers) withSource(entries []interface{}) []interface{} {
	source := l.getSource()
	if source == "" {
		return entries
	}
	return append([]interface{}{fmt.Sprintf("(%v)", source)}, entries...)
}

// Log logs to the output logger.
func (l *GenericLoggers) Log(output ...interface{}) {
	if l.Output == nil {
		return
	}
	l.Output.Println(l.withSource(output)...)
}

// LogError logs to the Error logger.
func (l *GenericLoggers) LogError(err ...interface{}) {
	if l.Error == nil {
		return
	}
	l.Error.Println(l.withSource(err)...)
}

// Close closes the logger
func (l *GenericLoggers) Close() error {
	return nil
}
