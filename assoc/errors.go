package assoc

import "errors"

var (
	// ErrSigmaLength indicates the sigma slice does not match the record count.
	ErrSigmaLength = errors.New("assoc: sigma length must equal record count")
	// ErrPairIndex indicates a binary override references an invalid component index.
	ErrPairIndex = errors.New("assoc: binary override index out of range")
)
