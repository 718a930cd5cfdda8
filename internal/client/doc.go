// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the cipher-chat command line client.
//
// Codec and steganography commands run locally through the same services
// the server uses. Chat commands go through an [adapter.ServerAdapter].
package client
