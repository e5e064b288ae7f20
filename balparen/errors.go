package balparen

import (
	"errors"
	"fmt"
)

// ErrUnbalanced means the sequence is not a balanced parenthesis string.
var ErrUnbalanced = errors.New("unbalanced parentheses")

// UnbalancedError locates the first violation: the first position whose
// excess is negative, or the length of the sequence with the final
// excess if that is not zero.
type UnbalancedError struct {
	Pos    uint64
	Excess int64
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("unbalanced parentheses: excess %d at position %d", e.Excess, e.Pos)
}

func (e *UnbalancedError) Unwrap() error { return ErrUnbalanced }
