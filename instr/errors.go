package instr

import "errors"

var (
	// ErrInvalidOperandPresence is returned when an operand is given for a
	// unit that does not take one, or is missing for a unit that does.
	ErrInvalidOperandPresence = errors.New("invalid operand presence")

	// ErrIndexOutOfRange is returned when an index does not fit in 12 bits.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnknownUnit is returned for unit codes outside the unit table.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrUnwritableDestination is returned when a read-only unit is used as
	// the destination.
	ErrUnwritableDestination = errors.New("unit cannot be a destination")

	// ErrTruncated is returned when a word stream ends inside an
	// instruction.
	ErrTruncated = errors.New("truncated instruction")
)
