package rlp

// Split returns the kind and content of the first value in b, and the bytes
// that follow it. Content and rest are sub-slices of b.
//
// Unlike DecodeList, Split does not descend into lists: for a list the content
// is the encoded body, which can be passed back to Split or CountValues.
func Split(b []byte) (k Kind, content, rest []byte, err error) {
	if len(b) == 0 {
		return 0, nil, b, tooShort(0, "empty input")
	}
	h, err := NewDecoder().readHead(b, 0)
	if err != nil {
		return 0, nil, b, err
	}
	end := h.payload + h.size
	return h.kind, b[h.payload:end], b[end:], nil
}

// SplitString splits b into the content of a string value and the bytes
// after it.
func SplitString(b []byte) (content, rest []byte, err error) {
	k, content, rest, err := Split(b)
	if err != nil {
		return nil, b, err
	}
	if k.IsList() {
		return nil, b, ErrExpectedString
	}
	return content, rest, nil
}

// SplitList splits b into the encoded body of a list value and the bytes
// after it.
func SplitList(b []byte) (content, rest []byte, err error) {
	k, content, rest, err := Split(b)
	if err != nil {
		return nil, b, err
	}
	if !k.IsList() {
		return nil, b, ErrExpectedList
	}
	return content, rest, nil
}

// CountValues counts the consecutive values encoded in b. Lists count as one
// value each.
func CountValues(b []byte) (int, error) {
	dec := NewDecoder()
	i := 0
	for pos := 0; pos < len(b); i++ {
		h, err := dec.readHead(b, pos)
		if err != nil {
			return 0, err
		}
		pos = h.payload + h.size
	}
	return i, nil
}
