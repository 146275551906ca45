package rlp

const (
	// Default maximum list nesting depth
	defaultMaxDepth = 1024
)

// config holds decoder configuration.
type config struct {
	maxDepth  int
	maxLength uint64
	canonical bool
}

// Option configures a Decoder.
type Option func(*config)

// MaxDepth sets the deepest list nesting the decoder accepts. A top-level list
// is depth 1. Input nested deeper than n returns ErrTooDeep.
//
// Non-positive values keep the default.
//
// Default: 1024
func MaxDepth(n int) Option {
	return func(c *config) {
		c.maxDepth = n
	}
}

// MaxLength caps the declared length of any single string or list body.
// Longer items return ErrTooLarge before any bytes are copied.
//
// Default: 0 (no limit beyond the buffer itself)
func MaxLength(n uint64) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Canonical rejects encodings that Encode and EncodeList would never produce:
// a single byte below 0x80 wrapped in a string prefix, a long form used for a
// body of 55 bytes or fewer, and length fields with leading zero bytes. These
// return ErrCanonSize.
//
// Default: false (every form in the prefix table is accepted)
func Canonical() Option {
	return func(c *config) {
		c.canonical = true
	}
}
