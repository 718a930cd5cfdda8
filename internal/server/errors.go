// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoChatEndpoint is returned by NewServer when neither an HTTP
	// address nor an HTTP handler is configured, so the chat API has
	// nowhere to listen.
	errNoChatEndpoint = errors.New("cipher-chat: no HTTP address or handler configured for the chat API")
)
