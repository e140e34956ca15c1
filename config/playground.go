/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	EnvVarPrefix = "generics"

	LoggerLogrus = "logrus"
	LoggerZap    = "zap"
	LoggerStd    = "std"
	LoggerHclog  = "hclog"

	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var (
	DefaultCountries = []string{"INDIA", "USA", "JAPAN", "CANADA", "CHINA", "RUSSIA", "MEXICO"}
	DefaultTarget    = "CANADA"
)

// PlaygroundConfiguration describes how the demonstrations are run.
type PlaygroundConfiguration struct {
	LogLevel  string   `mapstructure:"log_level"`
	Logger    string   `mapstructure:"logger"`
	Target    string   `mapstructure:"target"`
	Countries []string `mapstructure:"countries"`
	Strict    bool     `mapstructure:"strict"`
}

func init() {
	// validation errors are reported against configuration keys rather than Go field names.
	validation.ErrorTag = "mapstructure"
}

func (cfg *PlaygroundConfiguration) Validate() error {
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.LogLevel, validation.Required, validation.In(LevelDebug, LevelInfo, LevelWarn, LevelError)),
		validation.Field(&cfg.Logger, validation.Required, validation.In(LoggerLogrus, LoggerZap, LoggerStd, LoggerHclog)),
		validation.Field(&cfg.Target, validation.Required),
		validation.Field(&cfg.Countries, validation.Required, validation.Each(validation.Required)),
	)
}

// DefaultPlaygroundConfiguration returns the configuration used when nothing is specified.
func DefaultPlaygroundConfiguration() *PlaygroundConfiguration {
	return &PlaygroundConfiguration{
		LogLevel:  LevelInfo,
		Logger:    LoggerLogrus,
		Target:    DefaultTarget,
		Countries: slices.Clone(DefaultCountries),
		Strict:    true,
	}
}
