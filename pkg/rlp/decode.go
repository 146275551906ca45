package rlp

import (
	"bytes"
	"fmt"
)

// DecodeList decodes data with a decoder configured by opts. See
// Decoder.DecodeList.
func DecodeList(data []byte, opts ...Option) ([][]byte, error) {
	return NewDecoder(opts...).DecodeList(data)
}

// Decode decodes the value at offset with the default configuration. See
// Decoder.Decode.
func Decode(buf []byte, offset int) ([][]byte, int, error) {
	return NewDecoder().Decode(buf, offset)
}

// DecodeList decodes a buffer that holds exactly one RLP value and returns its
// leaf byte strings in order. Nested lists are flattened.
//
// Returns ErrInvalidRlpData if bytes remain after the value.
func (d *Decoder) DecodeList(data []byte) ([][]byte, error) {
	fragments, consumed, err := d.Decode(data, 0)
	if err != nil {
		return nil, err
	}
	if consumed != len(data) {
		return nil, &FormatError{
			Offset: consumed,
			Reason: fmt.Sprintf("value is %d bytes, buffer is %d", consumed, len(data)),
			Err:    ErrInvalidRlpData,
		}
	}
	return fragments, nil
}

// Decode decodes the value starting at buf[offset]. It returns the leaf byte
// strings of that value, with nested lists flattened, and the number of bytes
// the value occupies.
//
// Every returned fragment is a copy; none alias buf.
func (d *Decoder) Decode(buf []byte, offset int) ([][]byte, int, error) {
	if offset < 0 || offset >= len(buf) {
		return nil, 0, tooShort(offset, "no value at offset in %d byte buffer", len(buf))
	}

	fragments := [][]byte{}
	// End offsets of the lists still open around pos, innermost last.
	var open []int
	pos := offset

	for {
		h, err := d.readHead(buf, pos)
		if err != nil {
			return nil, 0, err
		}
		end := h.payload + h.size

		if n := len(open); n > 0 && end > open[n-1] {
			return nil, 0, tooShort(pos, "item ends at %d, past enclosing list end %d", end, open[n-1])
		}

		if h.kind.IsList() {
			if len(open) >= d.maxDepth {
				return nil, 0, &FormatError{
					Offset: pos,
					Reason: fmt.Sprintf("list nesting exceeds %d", d.maxDepth),
					Err:    ErrTooDeep,
				}
			}
			open = append(open, end)
			pos = h.payload
		} else {
			fragments = append(fragments, bytes.Clone(buf[h.payload:end]))
			pos = end
		}

		// Close every list whose body is now exhausted.
		for len(open) > 0 && pos == open[len(open)-1] {
			open = open[:len(open)-1]
		}
		if len(open) == 0 {
			return fragments, pos - offset, nil
		}
	}
}

// head describes one decoded prefix.
type head struct {
	kind    Kind
	payload int // offset of the first body byte
	size    int // body length in bytes
}

// readHead parses the prefix at buf[pos] and checks that the body it declares
// fits in buf. pos must be within buf.
func (d *Decoder) readHead(buf []byte, pos int) (head, error) {
	prefix := buf[pos]
	h := head{kind: kindOf(prefix)}

	var size uint64
	switch h.kind {
	case Byte:
		return head{kind: Byte, payload: pos, size: 1}, nil
	case String:
		h.payload = pos + 1
		size = uint64(prefix - baseString)
	case List:
		h.payload = pos + 1
		size = uint64(prefix - baseList)
	case LongString, LongList:
		base := byte(baseLongString)
		if h.kind == LongList {
			base = baseLongList
		}
		lenSize := int(prefix - base)
		start := pos + 1
		if lenSize > len(buf)-start {
			return head{}, tooShort(pos, "length field needs %d bytes, %d remain", lenSize, len(buf)-start)
		}
		if d.canonical && buf[start] == 0 {
			return head{}, canonErr(pos, "length field has leading zero")
		}
		size = ReadUint(buf[start : start+lenSize])
		if d.canonical && size <= maxShortLength {
			return head{}, canonErr(pos, fmt.Sprintf("long form used for %d byte body", size))
		}
		h.payload = start + lenSize
	}

	if d.maxLength > 0 && size > d.maxLength {
		return head{}, &FormatError{
			Offset: pos,
			Reason: fmt.Sprintf("declared length %d exceeds %d", size, d.maxLength),
			Err:    ErrTooLarge,
		}
	}
	if size > uint64(len(buf)-h.payload) {
		return head{}, tooShort(pos, "body needs %d bytes, %d remain", size, len(buf)-h.payload)
	}
	h.size = int(size)

	if d.canonical && h.kind == String && h.size == 1 && buf[h.payload] < baseString {
		return head{}, canonErr(pos, "single byte below 0x80 must not be prefixed")
	}
	return h, nil
}

func canonErr(pos int, reason string) error {
	return &FormatError{
		Offset: pos,
		Reason: reason,
		Err:    ErrCanonSize,
	}
}
