package instr

import "fmt"

// Unit identifies a source or destination port of the transport-triggered
// machine. The numeric value is the code stored in the instruction word.
type Unit uint8

// The unit codes. They are part of the wire format and must not change.
const (
	None Unit = iota
	StackPushPop
	StackIndex
	Register
	AluLeft
	AluRight
	AluOperator
	AluResult
	MemoryImmediate
	MemoryOperand
	ProgramCounter
	AbsoluteImmediate
	AbsoluteOperand

	numUnits
)

var unitNames = [numUnits]string{
	None:              "None",
	StackPushPop:      "StackPushPop",
	StackIndex:        "StackIndex",
	Register:          "Register",
	AluLeft:           "AluLeft",
	AluRight:          "AluRight",
	AluOperator:       "AluOperator",
	AluResult:         "AluResult",
	MemoryImmediate:   "MemoryImmediate",
	MemoryOperand:     "MemoryOperand",
	ProgramCounter:    "ProgramCounter",
	AbsoluteImmediate: "AbsoluteImmediate",
	AbsoluteOperand:   "AbsoluteOperand",
}

// Units lists every defined unit in code order.
func Units() []Unit {
	units := make([]Unit, 0, numUnits)
	for u := None; u < numUnits; u++ {
		units = append(units, u)
	}

	return units
}

// Valid reports whether u is one of the defined unit codes.
func (u Unit) Valid() bool {
	return u < numUnits
}

// NeedsOperand reports whether the unit carries a full 32-bit extension word
// after the primary instruction word.
func (u Unit) NeedsOperand() bool {
	return u == MemoryOperand || u == AbsoluteOperand
}

// Writable reports whether the unit may appear as a destination.
func (u Unit) Writable() bool {
	switch u {
	case AluResult, AbsoluteImmediate, AbsoluteOperand:
		return false
	}

	return u.Valid()
}

func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}

	return unitNames[u]
}

// ParseUnit returns the unit with the given name, as printed by String.
func ParseUnit(name string) (Unit, error) {
	for u, n := range unitNames {
		if n == name {
			return Unit(u), nil
		}
	}

	return 0, fmt.Errorf("unit %q: %w", name, ErrUnknownUnit)
}

func checkUnit(u Unit) error {
	if !u.Valid() {
		return fmt.Errorf("unit code %d: %w", uint8(u), ErrUnknownUnit)
	}

	return nil
}
