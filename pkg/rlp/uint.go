package rlp

import (
	"github.com/holiman/uint256"
)

// EncodeUint encodes n as a string holding its minimal big-endian bytes.
// Zero is the empty string, 0x80.
func EncodeUint(n uint64) []byte {
	if n == 0 {
		return []byte{baseString}
	}
	return Encode(PutUint(n))
}

// EncodeUint256 is EncodeUint for 256-bit values. A nil v encodes as zero.
func EncodeUint256(v *uint256.Int) []byte {
	if v == nil || v.IsZero() {
		return []byte{baseString}
	}
	return Encode(v.Bytes())
}

// DecodeUint interprets a decoded string as an unsigned integer. The empty
// string is zero; leading zero bytes are rejected.
func DecodeUint(b []byte) (uint64, error) {
	if err := checkUint(b, 8); err != nil {
		return 0, err
	}
	return ReadUint(b), nil
}

// DecodeUint256 is DecodeUint for values up to 32 bytes.
func DecodeUint256(b []byte) (*uint256.Int, error) {
	if err := checkUint(b, 32); err != nil {
		return nil, err
	}
	return new(uint256.Int).SetBytes(b), nil
}

func checkUint(b []byte, width int) error {
	if len(b) > width {
		return ErrUintRange
	}
	if len(b) > 0 && b[0] == 0 {
		return ErrCanonInt
	}
	return nil
}
