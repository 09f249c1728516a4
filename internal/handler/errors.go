// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 THS Realty

package handler

import "errors"

// errNoHandlersAreCreated is returned when the configuration enables no
// transport at all, which would leave the process serving nothing.
var errNoHandlersAreCreated = errors.New("no handlers are created")
