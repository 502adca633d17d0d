// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoTransportConfigured means config.Server names neither an HTTP nor a
// gRPC address, so the server would have nothing to listen on.
var errNoTransportConfigured = errors.New("no transport address is configured")
