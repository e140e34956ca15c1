/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package playground runs the demonstrations of the generic utilities and reports what they produced.
package playground

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/gogenerics/playground/collection"
	"github.com/gogenerics/playground/collection/container"
	"github.com/gogenerics/playground/collection/stack"
	"github.com/gogenerics/playground/commonerrors"
	"github.com/gogenerics/playground/config"
	"github.com/gogenerics/playground/logs"
	"github.com/gogenerics/playground/value"
)

const loggerSource = "generics-playground"

var floats = []float64{3.14159, 0.1, 0.25}

const missingFloat = 9.3

// Report gathers the outcome of every demonstration.
type Report struct {
	Names          [2]string
	Ints           [2]int
	Popped         string
	Remaining      []string
	Top            mo.Option[string]
	EmptyPopErr    error
	CountryIndex   mo.Option[int]
	FloatIndex     mo.Option[int]
	Distinct       []string
	ContainerItems []string
	ContainerIndex mo.Option[int]
}

type demo struct {
	name string
	run  func(cfg *config.PlaygroundConfiguration, loggers logs.Loggers, report *Report) error
}

var demos = []demo{
	{name: "swap", run: demoSwap},
	{name: "stack", run: demoStack},
	{name: "search", run: demoSearch},
	{name: "container", run: demoContainer},
}

// Run runs all the demonstrations in order. If loggers is nil, the logr logger stored in ctx is used if any.
func Run(ctx context.Context, cfg *config.PlaygroundConfiguration, loggers logs.Loggers) (report *Report, err error) {
	if cfg == nil {
		err = commonerrors.New(commonerrors.ErrUndefined, "missing configuration")
		return
	}
	err = cfg.Validate()
	if err != nil {
		return
	}
	if loggers == nil {
		loggers, err = loggersFromContext(ctx)
		if err != nil {
			return
		}
	}
	report = &Report{}
	for i := range demos {
		d := demos[i]
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = commonerrors.WrapErrorf(commonerrors.ErrUnexpected, ctxErr, "demonstration [%v] could not run", d.name)
			return
		}
		err = loggers.SetLogSource(d.name)
		if err != nil {
			err = commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "demonstration [%v] could not be logged", d.name)
			return
		}
		err = d.run(cfg, loggers, report)
		if err != nil {
			loggers.LogError(err)
			err = commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "demonstration [%v] failed", d.name)
			return
		}
	}
	return
}

func loggersFromContext(ctx context.Context) (logs.Loggers, error) {
	logger, err := logs.GetLogrLoggerFromContext(ctx)
	if err != nil {
		return logs.NewNoopLogger(loggerSource)
	}
	return logs.NewLogrLogger(logger, loggerSource)
}

func demoSwap(_ *config.PlaygroundConfiguration, loggers logs.Loggers, report *Report) error {
	name, lastName := "anurag", "yadav"
	value.Swap(&name, &lastName)
	loggers.Log(fmt.Sprintf("first is now %v, and lastName is now %v", name, lastName))

	int1, int2 := 1, 2
	value.Swap(&int2, &int1)
	loggers.Log(fmt.Sprintf("int1 is now %v, and int2 is now %v", int1, int2))

	report.Names = [2]string{name, lastName}
	report.Ints = [2]int{int1, int2}
	return nil
}

func demoStack(_ *config.PlaygroundConfiguration, loggers logs.Loggers, report *Report) (err error) {
	s := stack.NewStack[string]()
	s.Push("one")
	s.Push("two")
	s.Push("three")
	loggers.Log("stack:", s)

	report.Popped, err = s.Pop()
	if err != nil {
		return
	}
	loggers.Log("popped:", report.Popped)
	report.Remaining = s.Items()
	report.Top = s.PeekTop()
	if top, ok := report.Top.Get(); ok {
		loggers.Log("top item:", top)
	}

	_, report.EmptyPopErr = stack.NewStack[string]().Pop()
	if !commonerrors.Any(report.EmptyPopErr, commonerrors.ErrEmpty) {
		err = commonerrors.Newf(commonerrors.ErrUnexpected, "popping an empty stack returned [%v]", report.EmptyPopErr)
		return
	}
	loggers.Log("popping an empty stack fails:", report.EmptyPopErr)
	return
}

func demoSearch(cfg *config.PlaygroundConfiguration, loggers logs.Loggers, report *Report) error {
	report.CountryIndex = mo.TupleToOption(collection.FindString(cfg.Strict, cfg.Countries, cfg.Target))
	loggers.Log(describeIndex(cfg.Target, report.CountryIndex))

	report.FloatIndex = collection.FindIndexOption(missingFloat, floats)
	loggers.Log(describeIndex(missingFloat, report.FloatIndex))

	report.Distinct = collection.UniqueEntries(cfg.Countries)
	loggers.Log("distinct countries:", strings.Join(report.Distinct, ", "))
	return nil
}

func demoContainer(cfg *config.PlaygroundConfiguration, loggers logs.Loggers, report *Report) error {
	countries := container.NewStackContainer[string](nil)
	for i := range cfg.Countries {
		countries.Append(cfg.Countries[i])
	}
	report.ContainerItems = container.Collect[string](countries)
	loggers.Log("container holds", countries.Count(), "countries:", strings.Join(lo.Map(report.ContainerItems, func(c string, i int) string {
		return fmt.Sprintf("%v=%v", i, c)
	}), " "))

	last, err := countries.At(countries.Count() - 1)
	if err != nil {
		return err
	}
	loggers.Log("last appended country:", last)
	report.ContainerIndex = mo.TupleToOption(collection.FindString(cfg.Strict, report.ContainerItems, cfg.Target))
	loggers.Log(describeIndex(cfg.Target, report.ContainerIndex))
	return nil
}

func describeIndex[T any](target T, index mo.Option[int]) string {
	if i, ok := index.Get(); ok {
		return fmt.Sprintf("%v found at index %v", target, i)
	}
	return fmt.Sprintf("%v not found", target)
}
