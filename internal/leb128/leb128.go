// Package leb128 implements zigzag-signed, unsigned LEB128 varint
// encoding, used by BigNumber's exponent and signed-length fields
// (spec section 4.4).
//
// A signed value is first zigzag-mapped onto the unsigned integers,
// then emitted 7 bits at a time with the high bit marking
// continuation.
package leb128

import "github.com/bonjson-codec/bonjson/errs"

// ZigZagEncode maps a signed integer onto the unsigned integers so
// that small-magnitude values (positive or negative) stay small:
// 0 -> 0, -1 -> 1, 1 -> 2, -2 -> 3, 2 -> 4, ...
func ZigZagEncode(n int64) uint64 {
	return uint64(n<<1) ^ uint64(n>>63)
}

// ZigZagDecode reverses ZigZagEncode.
func ZigZagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}

// AppendUvarint appends the unsigned LEB128 encoding of v to buf and
// returns the extended slice.
func AppendUvarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}

	return append(buf, byte(v))
}

// AppendVarint appends the zigzag+LEB128 encoding of a signed integer.
func AppendVarint(buf []byte, n int64) []byte {
	return AppendUvarint(buf, ZigZagEncode(n))
}

// maxVarintLen64 bounds how many continuation bytes a 64-bit uvarint
// can legally occupy; used to detect truncated/malformed input instead
// of looping forever.
const maxVarintLen64 = 10

// ReadUvarint decodes an unsigned LEB128 varint from the front of buf.
// It returns the decoded value and the number of bytes consumed.
func ReadUvarint(buf []byte) (uint64, int, error) {
	var result uint64
	var shift uint

	for i := 0; i < len(buf) && i < maxVarintLen64; i++ {
		b := buf[i]
		result |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return result, i + 1, nil
		}
		shift += 7
	}

	if len(buf) < maxVarintLen64 {
		return 0, 0, errs.ErrUnexpectedEOF
	}

	return 0, 0, errs.Wrap(errs.ErrInvalidData, "varint longer than %d bytes", maxVarintLen64)
}

// ReadVarint decodes a zigzag+LEB128 signed varint from the front of buf.
func ReadVarint(buf []byte) (int64, int, error) {
	u, n, err := ReadUvarint(buf)
	if err != nil {
		return 0, 0, err
	}

	return ZigZagDecode(u), n, nil
}
