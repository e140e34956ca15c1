/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

type IServiceConfiguration interface {
	// Validate validates configuration entries.
	Validate() error
}
