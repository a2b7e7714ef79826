package domain

// Cast is a primitive value kind a Scalar accepts.
// Values outside the known set are treated as custom labels and rendered verbatim.
type Cast string

const (
	CastBinary Cast = "binary"
	CastBool   Cast = "bool"
	CastFloat  Cast = "float"
	CastInt    Cast = "int"
	CastNull   Cast = "null"
	CastStr    Cast = "str"
	CastTime   Cast = "time"
	CastSecure Cast = "secure"
)

// DefaultCast is used by scalars that declare neither casts nor a default cast.
const DefaultCast = CastStr

var castLabels = map[Cast]string{
	CastBinary: "binary string",
	CastBool:   "boolean value",
	CastFloat:  "float value",
	CastInt:    "integer value",
	CastNull:   "null value",
	CastStr:    "string",
	CastTime:   "time value",
	CastSecure: "encrypted string",
}

// Casts lists the known casts in display order.
func Casts() []Cast {
	return []Cast{CastBinary, CastBool, CastFloat, CastInt, CastNull, CastStr, CastTime, CastSecure}
}

// Known reports whether c is one of the enumerated casts.
func (c Cast) Known() bool {
	_, ok := castLabels[c]
	return ok
}

// Label returns the human label of the cast with suffix appended.
// Custom casts are returned as-is and never receive the suffix.
func (c Cast) Label(suffix string) string {
	if label, ok := castLabels[c]; ok {
		return label + suffix
	}
	return string(c)
}
