/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"log"
	"os"

	"github.com/go-logr/stdr"
)

// NewStdLogger creates a logger to standard output.
func NewStdLogger(loggerSource string) (loggers Loggers, err error) {
	return NewLogrLogger(stdr.New(log.New(os.Stdout, "", log.LstdFlags)), loggerSource)
}

// NewGenericStdLogger creates a logger to standard output/error without structured fields.
func NewGenericStdLogger(loggerSource string) (loggers Loggers, err error) {
	loggers = &GenericLoggers{
		Output: log.New(os.Stdout, "", log.LstdFlags),
		Error:  log.New(os.Stderr, "", log.LstdFlags),
	}
	err = loggers.SetLoggerSource(loggerSource)
	return
}
