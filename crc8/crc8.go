/*
NAME
  crc8.go

DESCRIPTION
  crc8 implements CRC-8-CCITT (polynomial 0x07, initial value 0x00, no
  input/output reflection, no final XOR) as a 256-entry lookup table, in the
  same style as container/mts/psi's CRC-32 table builder.

AUTHOR
  Aurora contributors

LICENSE
  Copyright (C) 2026 the Aurora project. All Rights Reserved.
*/

// Package crc8 computes the CRC-8-CCITT checksum used to validate each
// aurora frame's data chunk.
package crc8

const poly = 0x07

var table [256]byte

func init() {
	for i := 0; i < 256; i++ {
		crc := byte(i)
		for b := 0; b < 8; b++ {
			if crc&0x80 != 0 {
				crc = (crc << 1) ^ poly
			} else {
				crc <<= 1
			}
		}
		table[i] = crc
	}
}

// Checksum computes the CRC-8-CCITT of data.
func Checksum(data []byte) byte {
	var crc byte
	for _, b := range data {
		crc = table[crc^b]
	}
	return crc
}
