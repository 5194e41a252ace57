package common

// UnknownStr is the placeholder name for enum values outside the known range.
const UnknownStr = "unknown"
