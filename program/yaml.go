package program

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/ttasm/asm"
	"github.com/sarchlab/ttasm/instr"
)

// File is the YAML program description.
//
//	name: sample
//	index_policy: reject   # or mask
//	program:
//	  - asm: "R00 := #000666"
//	  - src: {unit: AbsoluteImmediate, index: ADD}
//	    dst: {unit: AluOperator}
//	  - src: {unit: Register, index: 1}
//	    dst: {unit: MemoryOperand, operand: 0x543}
//
// A statement is either asm or a dst with an optional src.
type File struct {
	Name        string      `yaml:"name"`
	IndexPolicy string      `yaml:"index_policy"`
	Program     []Statement `yaml:"program"`
}

// Statement is one instruction, either as text or as symbolic fields.
type Statement struct {
	Asm string    `yaml:"asm,omitempty"`
	Src *Endpoint `yaml:"src,omitempty"`
	Dst *Endpoint `yaml:"dst,omitempty"`
}

// Endpoint names a unit by its instr.Unit name.
type Endpoint struct {
	Unit    string  `yaml:"unit"`
	Index   scalar  `yaml:"index"`
	Operand *scalar `yaml:"operand"`
}

// scalar keeps the literal text of a YAML scalar so that hex numbers and
// operator names go through the same parser.
type scalar string

func (s *scalar) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar", value.Line)
	}

	*s = scalar(value.Value)
	return nil
}

// LoadYAMLFile reads a YAML program description from disk.
func LoadYAMLFile(path string) (Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// LoadYAML reads a YAML program description.
func LoadYAML(r io.Reader) (Program, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, err
	}

	return f.Build()
}

// Build turns the description into a program.
func (f File) Build() (Program, error) {
	policy, err := parsePolicy(f.IndexPolicy)
	if err != nil {
		return nil, err
	}

	p := make(Program, 0, len(f.Program))
	for n, s := range f.Program {
		i, err := s.build(policy)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", n, err)
		}
		p = append(p, i)
	}

	return p, nil
}

func parsePolicy(name string) (instr.IndexPolicy, error) {
	switch name {
	case "", "reject":
		return instr.RejectIndex, nil
	case "mask":
		return instr.MaskIndex, nil
	}

	return 0, fmt.Errorf("unknown index policy %q", name)
}

func (s Statement) build(policy instr.IndexPolicy) (instr.Inst, error) {
	if s.Asm != "" {
		if s.Src != nil || s.Dst != nil {
			return instr.Inst{}, fmt.Errorf("asm cannot be combined with src/dst")
		}
		return asm.ParseLine(s.Asm)
	}
	if s.Dst == nil {
		return instr.Inst{}, fmt.Errorf("statement needs asm or dst")
	}

	b := instr.Builder{}.WithIndexPolicy(policy)

	dst, err := s.Dst.resolve(false, policy)
	if err != nil {
		return instr.Inst{}, fmt.Errorf("dst: %w", err)
	}
	b = b.WithDst(dst.Unit, dst.Index)
	if s.Dst.Operand != nil {
		b = b.WithDstOperand(dst.Operand)
	}

	if s.Src != nil {
		e, err := s.Src.resolve(dst.Unit == instr.AluOperator, policy)
		if err != nil {
			return instr.Inst{}, fmt.Errorf("src: %w", err)
		}
		b = b.WithSrc(e.Unit, e.Index)
		if s.Src.Operand != nil {
			b = b.WithSrcOperand(e.Operand)
		}
	}

	return b.Build()
}

func (e Endpoint) resolve(
	aluOpNames bool,
	policy instr.IndexPolicy,
) (instr.Endpoint, error) {
	unit, err := instr.ParseUnit(e.Unit)
	if err != nil {
		return instr.Endpoint{}, err
	}

	out := instr.Endpoint{Unit: unit}

	if e.Index != "" {
		index, err := strconv.ParseUint(string(e.Index), 0, 32)
		if err != nil && aluOpNames {
			op, opErr := instr.ParseALUOp(string(e.Index))
			if opErr != nil {
				return instr.Endpoint{}, opErr
			}
			index, err = uint64(op), nil
		}
		if err != nil {
			return instr.Endpoint{}, fmt.Errorf("index %q: %w", e.Index, err)
		}
		if index > instr.MaxIndex {
			if policy != instr.MaskIndex {
				return instr.Endpoint{}, fmt.Errorf("index 0x%x: %w",
					index, instr.ErrIndexOutOfRange)
			}
			index &= instr.MaxIndex
		}
		out.Index = uint16(index)
	}

	if e.Operand != nil {
		operand, err := strconv.ParseUint(string(*e.Operand), 0, 32)
		if err != nil {
			return instr.Endpoint{}, fmt.Errorf("operand %q: %w", *e.Operand, err)
		}
		out.Operand = uint32(operand)
	}

	return out, nil
}
