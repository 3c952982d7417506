// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

// Package fakeservice is an in-process implementation of the retdec REST
// API, for end-to-end tests of the real HTTP transport and for running
// the command-line tools without a network.
//
// It serves every endpoint the client uses, under a configurable path
// prefix (default "/service/api"):
//
//	GET  /test
//	GET  /test/echo
//	POST /fileinfo/analyses
//	GET  /fileinfo/analyses/{id}/status
//	GET  /fileinfo/analyses/{id}/output
//	POST /decompiler/decompilations
//	GET  /decompiler/decompilations/{id}/status
//	GET  /decompiler/decompilations/{id}/outputs/hll
//
// Requests must carry HTTP Basic credentials whose user name is the
// configured API key. Jobs report themselves finished after a configured
// number of status polls. Inputs whose name ends with the configured
// failure suffix fail instead of succeeding. Outputs are synthesized
// from the input's name, size, format magic and BLAKE3 checksum, and
// are delivered as attachments.
package fakeservice
