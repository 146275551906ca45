package rlp

// Encode returns the RLP encoding of a single byte string.
//
// A lone byte below 0x80 encodes as itself. Anything else gets a short
// prefix (up to 55 bytes) or a long prefix followed by its big-endian length.
// The result never shares memory with data.
//
// Example:
//
//	rlp.Encode([]byte("dog")) // 83 64 6f 67
func Encode(data []byte) []byte {
	if len(data) == 1 && data[0] < baseString {
		return []byte{data[0]}
	}

	n := uint64(len(data))
	out := make([]byte, 0, headSize(n)+len(data))
	out = appendHead(out, baseString, baseLongString, n)
	return append(out, data...)
}

// EncodeString is a convenience wrapper that encodes s as a byte string.
func EncodeString(s string) []byte {
	return Encode([]byte(s))
}

// EncodeList concatenates already-encoded items and wraps them in a list
// prefix. Passing no items yields the empty list, 0xc0.
//
// Example:
//
//	rlp.EncodeList(rlp.Encode([]byte("cat")), rlp.Encode([]byte("dog")))
func EncodeList(items ...[]byte) []byte {
	var size int
	for _, item := range items {
		size += len(item)
	}

	out := make([]byte, 0, headSize(uint64(size))+size)
	out = appendHead(out, baseList, baseLongList, uint64(size))
	for _, item := range items {
		out = append(out, item...)
	}
	return out
}

// EncodeBytesList encodes each raw byte string and wraps the results in a
// single list.
func EncodeBytesList(items [][]byte) []byte {
	encoded := make([][]byte, len(items))
	for i, item := range items {
		encoded[i] = Encode(item)
	}
	return EncodeList(encoded...)
}

// ListSize returns the encoded size of a list whose body is contentSize bytes.
func ListSize(contentSize uint64) uint64 {
	return uint64(headSize(contentSize)) + contentSize
}
