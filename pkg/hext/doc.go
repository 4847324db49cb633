// Package hext converts hext, a plain-text notation for binary data, to the
// bytes it describes.
//
// A hext file starts with a header line declaring the bit order, the byte
// order and, optionally, that unaligned bitstreams are padded:
//
//	~msb0 little-endian padbits
//
// The body mixes the following, separated by whitespace where needed:
//
//	41 4a ff          octets, two hex digits each
//	.0100 ..0010      bitstreams, after "." or "..", joined until other data
//	=200 =-40000      decimals, encoded in the smallest fitting width
//	u16=65534 i8=-1   decimals of an explicit width (8, 16, 32 or 64)
//	"text\n"          string literals, copied as UTF-8
//	# comment         ignored up to the end of the line
//
// Decimals are written in the declared byte order. Bitstreams are written
// most significant bit first.
package hext
