/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Command generics-playground runs the demonstrations of the generic utilities: swapping values,
// a generic stack, searching sequences of equatable values and an indexed container attached to a stack.
//
// Run:
//
//	go run ./cmd/generics-playground --target JAPAN --logger zap
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gogenerics/playground/config"
	"github.com/gogenerics/playground/internal/playground"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) (err error) {
	defaults := config.DefaultPlaygroundConfiguration()
	flagSet := pflag.NewFlagSet("generics-playground", pflag.ContinueOnError)
	flagSet.String("logger", defaults.Logger, fmt.Sprintf("logger to use (%v)", strings.Join([]string{config.LoggerLogrus, config.LoggerZap, config.LoggerStd, config.LoggerHclog}, "|")))
	flagSet.String("log-level", defaults.LogLevel, "log level (debug|info|warn|error)")
	flagSet.String("target", defaults.Target, "country to look for")
	flagSet.StringSlice("countries", defaults.Countries, "list of countries to search")
	flagSet.Bool("strict", defaults.Strict, "whether the country search is case sensitive")
	err = flagSet.Parse(args)
	if err != nil {
		return
	}

	session := viper.New()
	bindings := map[string]string{
		"logger":    "logger",
		"log-level": "log_level",
		"target":    "target",
		"countries": "countries",
		"strict":    "strict",
	}
	for flagName, envVar := range bindings {
		err = config.BindFlagToEnv(session, config.EnvVarPrefix, envVar, flagSet.Lookup(flagName))
		if err != nil {
			return
		}
	}

	cfg := &config.PlaygroundConfiguration{}
	err = config.LoadFromViper(session, config.EnvVarPrefix, cfg, defaults)
	if err != nil {
		return
	}

	loggers, err := playground.NewLoggers(cfg)
	if err != nil {
		return
	}
	defer func() { _ = loggers.Close() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	_, err = playground.Run(ctx, cfg, loggers)
	return
}
