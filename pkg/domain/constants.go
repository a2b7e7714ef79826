package domain

// SequenceSegment is the path segment that stands for "any element of a sequence".
const SequenceSegment = "[]"

// Kind tags double as the last-resort keys of the description table.
// A description registered under "mapping" applies to every mapping that has no
// more specific entry.
const (
	TagNode        = "node"
	TagScalar      = "scalar"
	TagFixedValue  = "fixed_value"
	TagSequence    = "sequence"
	TagMapping     = "mapping"
	TagOpenMapping = "open_mapping"
	TagRoot        = "root"
)

// MappingFormat is the format label shared by every mapping variant.
const MappingFormat = "key value mapping"
