package rlp

// Kind is the form of an RLP value, selected by its prefix byte.
type Kind int

const (
	Byte       Kind = iota // 0x00-0x7f
	String                 // 0x80-0xb7
	LongString             // 0xb8-0xbf
	List                   // 0xc0-0xf7
	LongList               // 0xf8-0xff
)

func (k Kind) String() string {
	switch k {
	case Byte:
		return "Byte"
	case String:
		return "String"
	case LongString:
		return "LongString"
	case List:
		return "List"
	case LongList:
		return "LongList"
	default:
		return "Unknown"
	}
}

// IsList reports whether k is one of the list forms.
func (k Kind) IsList() bool {
	return k == List || k == LongList
}

// Prefix bases. A short form adds the body length to its base, a long form
// adds the size of the length field.
const (
	baseString     = 0x80
	baseLongString = 0xb7
	baseList       = 0xc0
	baseLongList   = 0xf7

	// Bodies up to this many bytes use the short form.
	maxShortLength = 55
)

func kindOf(prefix byte) Kind {
	switch {
	case prefix < baseString:
		return Byte
	case prefix <= baseLongString:
		return String
	case prefix < baseList:
		return LongString
	case prefix <= baseLongList:
		return List
	default:
		return LongList
	}
}

// Decoder decodes RLP buffers into flat sequences of byte strings.
//
// A Decoder holds only its configuration, so one value can be shared by
// concurrent callers.
type Decoder struct {
	maxDepth  int
	maxLength uint64
	canonical bool
}

// NewDecoder creates a decoder configured by opts.
//
// Example:
//
//	dec := rlp.NewDecoder(rlp.MaxDepth(16), rlp.Canonical())
func NewDecoder(opts ...Option) *Decoder {
	cfg := &config{
		maxDepth: defaultMaxDepth,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.maxDepth <= 0 {
		cfg.maxDepth = defaultMaxDepth
	}

	return &Decoder{
		maxDepth:  cfg.maxDepth,
		maxLength: cfg.maxLength,
		canonical: cfg.canonical,
	}
}
