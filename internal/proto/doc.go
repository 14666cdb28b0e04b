// Package proto implements the host-link wire protocol: fixed 8-byte
// request/response frames, CRC-16/ARC validated, carrying keyboard and
// mouse HID events and output-selection commands.
//
// # Frame layout
//
//	Request:  [MAGIC=0x33][opcode][payload(4)][crc_hi][crc_lo]
//	Response: [MAGIC_RESP=0x34][status1][status2][status3][reserved(2)][crc_hi][crc_lo]
//
// The CRC-16/ARC (see package crc16) is computed over bytes 0..5 and
// stored big-endian in bytes 6..7.
//
// # Building and parsing
//
// Use EncodeRequest to build a request frame and DecodeRequest to
// validate and extract one. EncodeResponse builds response frames
// from a Response.
package proto
