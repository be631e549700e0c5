// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

// Package xdrstream reads and writes framed streams of XDR records.
//
// Each record is preceded by a four-byte big-endian header: the high
// bit is the record marker (always set when writing, required when
// reading) and the low 31 bits give the record length in bytes. This
// is the RFC 5531 record-marking convention restricted to
// single-fragment records, which is how ledger history files are laid
// down on disk.
//
// History files are conventionally gzip-compressed; NewGzipReader and
// NewGzipWriter handle the compression transparently so callers deal
// only in records.
package xdrstream
