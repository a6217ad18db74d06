package stego

import (
	"errors"
	"fmt"
)

// Decode failures. The HTTP layer maps all of these to "no hidden data
// found" responses; they are distinct so callers and tests can tell why
// parsing stopped.
var (
	// ErrHeaderTooShort means the image holds fewer bits than the fixed
	// 11-byte header prefix.
	ErrHeaderTooShort = errors.New("not enough data for header")

	// ErrNoStegoHeader means the magic tag is absent at bit offset 0.
	ErrNoStegoHeader = errors.New("no stego header found")

	// ErrCorruptHeader means the magic matched but the declared filename
	// extends past the available bits.
	ErrCorruptHeader = errors.New("corrupt header or insufficient data")

	// ErrInsufficientData means the header parsed but the declared payload
	// extends past the available bits.
	ErrInsufficientData = errors.New("image does not contain the expected amount of data")
)

// CapacityError reports an encode attempt that does not fit the image.
type CapacityError struct {
	NeededBits    int
	AvailableBits int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("payload too large: need %d bits, have %d bits", e.NeededBits, e.AvailableBits)
}
