package webdemo

// Error kinds reported to the host. They name the triggering condition,
// not the Go error text, so host code can branch on them.
const (
	kindInvalidDimension  = "InvalidDimension"
	kindIndexOutOfRange   = "IndexOutOfRange"
	kindShapeMismatch     = "ShapeMismatch"
	kindDimensionMismatch = "DimensionMismatch"
	kindUnknownHandle     = "UnknownHandle"
	kindNetwork           = "NetworkError"
)
