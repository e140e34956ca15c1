/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config loads configuration structures from defaults, `.env` files, environment variables and flags.
package config

import (
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gogenerics/playground/commonerrors"
	"github.com/gogenerics/playground/value"
)

const (
	EnvVarSeparator    = "_"
	DotEnvFile         = ".env"
	configKeySeparator = "."
)

// Load loads the configuration from the environment (i.e. .env file, environment variables) and puts the entries into the configuration object configurationToSet.
// If not found in the environment, the values will come from the default values defined in defaultConfiguration.
// `envVarPrefix` defines a prefix that ENVIRONMENT variables will use.  E.g. if your prefix is "generics", the env registry will look for env variables that start with "GENERICS_".
func Load(envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) error {
	return LoadFromViper(viper.New(), envVarPrefix, configurationToSet, defaultConfiguration)
}

// LoadFromViper is the same as `Load` but instead of creating a new viper session, reuse the one provided.
// Viper's precedence order is maintained:
//  1. values set using explicit calls to `Set`
//  2. flags which were changed
//  3. environment (variables or `.env`)
//  4. default values from defaultConfiguration
//  5. flag default values
func LoadFromViper(viperSession *viper.Viper, envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) (err error) {
	if viperSession == nil || configurationToSet == nil {
		err = commonerrors.ErrUndefined
		return
	}
	if defaultConfiguration != nil {
		var defaults map[string]interface{}
		err = mapstructure.Decode(defaultConfiguration, &defaults)
		if err != nil {
			err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "could not read default configuration")
			return
		}
		err = viperSession.MergeConfigMap(defaults)
		if err != nil {
			err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "could not set default configuration")
			return
		}
	}

	// Load .env file contents into environment, if it exists
	_ = godotenv.Load(DotEnvFile)

	setEnvOptions(viperSession, envVarPrefix)

	err = viperSession.Unmarshal(configurationToSet)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "unable to decode config into struct")
		return
	}
	err = configurationToSet.Validate()
	return
}

// BindFlagToEnv binds pflags to environment variable.
// Envvar is the environment variable string with or without the prefix envVarPrefix
func BindFlagToEnv(viperSession *viper.Viper, envVarPrefix string, envVar string, flag *pflag.Flag) (err error) {
	if viperSession == nil || flag == nil || value.IsEmpty(envVar) {
		err = commonerrors.ErrUndefined
		return
	}
	setEnvOptions(viperSession, envVarPrefix)
	key, cleansedEnvVar := generateEnvVarConfigKeys(envVar, envVarPrefix)

	err = viperSession.BindPFlag(key, flag)
	if err != nil {
		return
	}
	err = viperSession.BindEnv(key, cleansedEnvVar)
	return
}

func generateEnvVarConfigKeys(envVar, envVarPrefix string) (key string, cleansedEnvVar string) {
	envVarLower := strings.ToLower(strings.TrimSpace(envVar))
	envVarPrefixLower := strings.ToLower(strings.TrimSpace(envVarPrefix))
	short := envVarLower
	if envVarPrefixLower != "" && strings.HasPrefix(envVarLower, envVarPrefixLower+EnvVarSeparator) {
		short = strings.TrimPrefix(envVarLower, envVarPrefixLower+EnvVarSeparator)
	}
	key = short
	cleansedEnvVar = strings.ToUpper(strings.NewReplacer(configKeySeparator, EnvVarSeparator).Replace(short))
	if envVarPrefixLower != "" {
		cleansedEnvVar = strings.ToUpper(envVarPrefixLower) + EnvVarSeparator + cleansedEnvVar
	}
	return
}

func setEnvOptions(viperSession *viper.Viper, envVarPrefix string) {
	viperSession.SetEnvPrefix(envVarPrefix)
	viperSession.AllowEmptyEnv(false)

	viperSession.AutomaticEnv()
	viperSession.SetEnvKeyReplacer(strings.NewReplacer(configKeySeparator, EnvVarSeparator))
}
