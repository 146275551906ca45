package rlp

// PutUint returns the minimal big-endian representation of n. Zero is a
// single 0x00 byte.
func PutUint(n uint64) []byte {
	size := intSize(n)
	b := make([]byte, size)
	for i := size - 1; i >= 0; i-- {
		b[i] = byte(n)
		n >>= 8
	}
	return b
}

// EncodeLength serializes a bare length value: a 0x80+k prefix followed by
// the k bytes of PutUint(n).
func EncodeLength(n uint64) []byte {
	l := PutUint(n)
	out := make([]byte, 0, 1+len(l))
	out = append(out, baseString+byte(len(l)))
	return append(out, l...)
}

// ReadUint folds b as a big-endian unsigned integer. Callers keep b to at
// most 8 bytes.
func ReadUint(b []byte) uint64 {
	var n uint64
	for _, c := range b {
		n = n<<8 | uint64(c)
	}
	return n
}

// intSize is len(PutUint(n)).
func intSize(n uint64) int {
	for size := 1; ; size++ {
		if n >>= 8; n == 0 {
			return size
		}
	}
}

// headSize is the number of prefix bytes in front of a body of n bytes.
func headSize(n uint64) int {
	if n <= maxShortLength {
		return 1
	}
	return 1 + intSize(n)
}

// appendHead appends the prefix for a body of n bytes, using short as the
// short-form base and long as the long-form base.
func appendHead(dst []byte, short, long byte, n uint64) []byte {
	if n <= maxShortLength {
		return append(dst, short+byte(n))
	}
	size := intSize(n)
	dst = append(dst, long+byte(size))
	for i := size - 1; i >= 0; i-- {
		dst = append(dst, byte(n>>(8*uint(i))))
	}
	return dst
}
