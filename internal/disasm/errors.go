package disasm

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a decode failure.
type ErrorKind int

const (
	// InvalidEncoding means the bytes at the offset match no valid encoding.
	InvalidEncoding ErrorKind = iota + 1
	// TruncatedInstruction means the blob ends inside an instruction.
	TruncatedInstruction
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidEncoding:
		return "invalid encoding"
	case TruncatedInstruction:
		return "truncated instruction"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

var (
	ErrInvalidEncoding = errors.New("invalid encoding")
	ErrTruncated       = errors.New("truncated instruction")
)

// DecodeError reports where decoding stopped. Offset is the start of the
// offending instruction.
type DecodeError struct {
	Kind   ErrorKind
	Offset int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s at offset %#x", e.Kind, e.Offset)
}

// Unwrap makes the kind matchable with errors.Is.
func (e *DecodeError) Unwrap() error {
	if e.Kind == TruncatedInstruction {
		return ErrTruncated
	}
	return ErrInvalidEncoding
}
