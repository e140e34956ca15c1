/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package playground

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gogenerics/playground/commonerrors"
	"github.com/gogenerics/playground/config"
	"github.com/gogenerics/playground/logs"
)

// NewLoggers creates the loggers described by the configuration.
func NewLoggers(cfg *config.PlaygroundConfiguration) (loggers logs.Loggers, err error) {
	if cfg == nil {
		err = commonerrors.New(commonerrors.ErrUndefined, "missing configuration")
		return
	}
	switch cfg.Logger {
	case config.LoggerLogrus:
		l := logrus.New()
		l.SetOutput(os.Stdout)
		level, subErr := logrus.ParseLevel(cfg.LogLevel)
		if subErr != nil {
			err = commonerrors.WrapError(commonerrors.ErrInvalid, subErr, "")
			return
		}
		l.SetLevel(level)
		return logs.NewLogrusLogger(l, loggerSource)
	case config.LoggerZap:
		level, subErr := zapcore.ParseLevel(cfg.LogLevel)
		if subErr != nil {
			err = commonerrors.WrapError(commonerrors.ErrInvalid, subErr, "")
			return
		}
		zapCfg := zap.NewDevelopmentConfig()
		zapCfg.Level = zap.NewAtomicLevelAt(level)
		zapCfg.OutputPaths = []string{"stdout"}
		zapL, subErr := zapCfg.Build()
		if subErr != nil {
			err = commonerrors.WrapError(commonerrors.ErrUnexpected, subErr, "could not create zap logger")
			return
		}
		return logs.NewZapLogger(zapL, loggerSource)
	case config.LoggerHclog:
		return logs.NewHclogLogger(hclog.New(&hclog.LoggerOptions{
			Level:  hclog.LevelFromString(cfg.LogLevel),
			Output: os.Stdout,
		}), loggerSource)
	case config.LoggerStd:
		return logs.NewStdLogger(loggerSource)
	default:
		err = commonerrors.Newf(commonerrors.ErrUnsupported, "logger [%v]", cfg.Logger)
		return
	}
}
