// Copyright 2026 The retdec-go Authors
// SPDX-License-Identifier: Apache-2.0

// Retdec-fakeserver serves a local imitation of the retdec API for
// trying the decompiler and fileinfo commands without an account:
//
//	retdec-fakeserver --api-key KEY [--listen ADDR] [--polls N]
//	RETDEC_API_URL=http://ADDR/service/api RETDEC_API_KEY=KEY fileinfo prog.exe
//
// Jobs finish after --polls status requests. Inputs whose name ends in
// --fail-suffix fail with an unsupported format error. The outputs are
// generated from the input's name, size and magic number; nothing is
// actually decompiled.
package main
