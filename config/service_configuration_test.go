/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogenerics/playground/commonerrors"
)

type DummyConfiguration struct {
	Host string `mapstructure:"dummy_host"`
	Port int    `mapstructure:"port"`
}

func (cfg *DummyConfiguration) Validate() error {
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Host, validation.Required),
		validation.Field(&cfg.Port, validation.Required, validation.Min(0)),
	)
}

func TestServiceConfigurationLoad(t *testing.T) {
	expectedHost := fmt.Sprintf("a test host %v", faker.Word())
	configTest := &DummyConfiguration{}
	err := Load("test", configTest, &DummyConfiguration{Port: 5432})
	// The host is missing.
	require.Error(t, err)

	t.Setenv("TEST_DUMMY_HOST", expectedHost)
	err = Load("test", configTest, &DummyConfiguration{Port: 5432})
	require.NoError(t, err)
	assert.Equal(t, expectedHost, configTest.Host)
	assert.Equal(t, 5432, configTest.Port)

	t.Setenv("TEST_PORT", "8080")
	err = Load("test", configTest, &DummyConfiguration{Port: 5432})
	require.NoError(t, err)
	assert.Equal(t, 8080, configTest.Port)
}

func TestServiceConfigurationLoad_Undefined(t *testing.T) {
	err := LoadFromViper(nil, "test", &DummyConfiguration{}, nil)
	assert.True(t, commonerrors.Any(err, commonerrors.ErrUndefined))
	err = Load("test", nil, nil)
	assert.True(t, commonerrors.Any(err, commonerrors.ErrUndefined))
}

func TestPlaygroundConfiguration_Defaults(t *testing.T) {
	cfg := &PlaygroundConfiguration{}
	err := Load(EnvVarPrefix, cfg, DefaultPlaygroundConfiguration())
	require.NoError(t, err)
	assert.Equal(t, DefaultPlaygroundConfiguration(), cfg)
}

func TestPlaygroundConfiguration_Environment(t *testing.T) {
	t.Setenv("GENERICS_LOG_LEVEL", LevelDebug)
	t.Setenv("GENERICS_LOGGER", LoggerZap)
	t.Setenv("GENERICS_TARGET", "mexico")
	t.Setenv("GENERICS_STRICT", "false")
	t.Setenv("GENERICS_COUNTRIES", "FRANCE,MEXICO")
	cfg := &PlaygroundConfiguration{}
	err := Load(EnvVarPrefix, cfg, DefaultPlaygroundConfiguration())
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, cfg.LogLevel)
	assert.Equal(t, LoggerZap, cfg.Logger)
	assert.Equal(t, "mexico", cfg.Target)
	assert.False(t, cfg.Strict)
	assert.Equal(t, []string{"FRANCE", "MEXICO"}, cfg.Countries)
}

func TestPlaygroundConfiguration_ErrorTag(t *testing.T) {
	assert.Equal(t, "mapstructure", validation.ErrorTag)
	cfg := &PlaygroundConfiguration{}
	require.Error(t, cfg.Validate())
	require.Error(t, cfg.Validate())
	assert.Equal(t, "mapstructure", validation.ErrorTag)
}

func TestPlaygroundConfiguration_Validate(t *testing.T) {
	cfg := DefaultPlaygroundConfiguration()
	require.NoError(t, cfg.Validate())

	cfg.Logger = faker.Word() + "-logger"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logger")

	cfg = DefaultPlaygroundConfiguration()
	cfg.LogLevel = "verbose"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")

	cfg = DefaultPlaygroundConfiguration()
	cfg.Countries = []string{"INDIA", ""}
	assert.Error(t, cfg.Validate())

	cfg = DefaultPlaygroundConfiguration()
	cfg.Target = " "
	assert.NoError(t, cfg.Validate())
	cfg.Target = ""
	assert.Error(t, cfg.Validate())
}

func TestBinding(t *testing.T) {
	session := viper.New()
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.String("target", "USA", "country to look for")
	flagSet.Bool("strict", true, "strict search")
	require.NoError(t, BindFlagToEnv(session, EnvVarPrefix, "GENERICS_TARGET", flagSet.Lookup("target")))
	require.NoError(t, BindFlagToEnv(session, EnvVarPrefix, "strict", flagSet.Lookup("strict")))
	assert.Error(t, BindFlagToEnv(session, EnvVarPrefix, "strict", nil))

	cfg := &PlaygroundConfiguration{}
	// flag defaults do not take precedence over the default configuration.
	require.NoError(t, LoadFromViper(session, EnvVarPrefix, cfg, DefaultPlaygroundConfiguration()))
	assert.Equal(t, DefaultTarget, cfg.Target)

	require.NoError(t, flagSet.Parse([]string{"--target", "JAPAN", "--strict=false"}))
	cfg = &PlaygroundConfiguration{}
	require.NoError(t, LoadFromViper(session, EnvVarPrefix, cfg, DefaultPlaygroundConfiguration()))
	assert.Equal(t, "JAPAN", cfg.Target)
	assert.False(t, cfg.Strict)
}

func TestGenerateEnvVarConfigKeys(t *testing.T) {
	key, envVar := generateEnvVarConfigKeys("GENERICS_LOG_LEVEL", "generics")
	assert.Equal(t, "log_level", key)
	assert.Equal(t, "GENERICS_LOG_LEVEL", envVar)
	key, envVar = generateEnvVarConfigKeys("log_level", "generics")
	assert.Equal(t, "log_level", key)
	assert.Equal(t, "GENERICS_LOG_LEVEL", envVar)
	key, envVar = generateEnvVarConfigKeys("Target", "")
	assert.Equal(t, "target", key)
	assert.Equal(t, strings.ToUpper("target"), envVar)
}
