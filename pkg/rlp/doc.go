// Package rlp implements encoding and decoding of byte strings and lists of
// byte strings in the Recursive Length Prefix (RLP) format.
//
// Every RLP value starts with a prefix byte that selects one of five forms:
//
//	0x00-0x7f  a single byte, encoded as itself
//	0x80-0xb7  a string of 0-55 bytes, length = prefix - 0x80
//	0xb8-0xbf  a longer string, prefix - 0xb7 big-endian length bytes follow
//	0xc0-0xf7  a list with a 0-55 byte body, length = prefix - 0xc0
//	0xf8-0xff  a longer list, prefix - 0xf7 big-endian length bytes follow
//
// # Examples
//
//	Encode([]byte{0x01})                     // 01
//	Encode([]byte("dog"))                    // 83 64 6f 67
//	EncodeList(Encode([]byte("cat")), Encode([]byte("dog")))
//	                                         // c8 83 63 61 74 83 64 6f 67
//
// # Encoding
//
// Encode wraps a single byte string. EncodeList wraps items that have already
// been encoded, so callers build nested structures bottom-up:
//
//	inner := rlp.EncodeList(rlp.Encode(a), rlp.Encode(b))
//	outer := rlp.EncodeList(inner, rlp.Encode(c))
//
// # Decoding
//
// DecodeList decodes a complete buffer and returns its leaf byte strings:
//
//	items, err := rlp.DecodeList(data)
//
// Lists are flattened. Decoding the outer value above yields a, b, c in order;
// the grouping of a and b is not reported. Split, SplitList and CountValues
// expose one level of structure at a time for callers that need it.
//
// The whole buffer must be consumed: trailing bytes are ErrInvalidRlpData and
// any length that reaches past the end of the buffer is ErrDataTooShort.
//
// # Security
//
// Decoding walks nested lists with an explicit stack instead of recursion.
// MaxDepth (default 1024) bounds the nesting accepted, and MaxLength can cap
// the declared length of any single item.
package rlp
