// Copyright 2026 The Meridian Authors
// SPDX-License-Identifier: Apache-2.0

// Package crc16 implements the CRC16-XMODEM checksum (polynomial
// 0x1021, initial value 0, no reflection, no final XOR). This is the
// checksum StrKey appends to every encoded key; it exists to catch
// transcription errors, not to provide integrity against tampering.
//
// The standard library has hash/crc32 and hash/crc64 but no 16-bit
// variant, so the table is built here. The table is computed once at
// package init from the polynomial rather than embedded as a literal.
package crc16

// polynomial is the CCITT polynomial x^16 + x^12 + x^5 + 1 used by
// the XMODEM variant.
const polynomial = 0x1021

var table [256]uint16

func init() {
	for i := 0; i < 256; i++ {
		crc := uint16(i) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ polynomial
			} else {
				crc <<= 1
			}
		}
		table[i] = crc
	}
}

// Checksum returns the CRC16-XMODEM checksum of data.
func Checksum(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc = crc<<8 ^ table[byte(crc>>8)^b]
	}
	return crc
}

// Update adds the bytes of data to a running checksum and returns the
// new value. Checksum(data) is equivalent to Update(0, data).
func Update(crc uint16, data []byte) uint16 {
	for _, b := range data {
		crc = crc<<8 ^ table[byte(crc>>8)^b]
	}
	return crc
}
