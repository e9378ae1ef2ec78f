package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput    = errors.New("no runs to aggregate")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MalformedInputError reports a run payload without usable timing data,
// identifying the node and run index it came from.
type MalformedInputError struct {
	NodeName string
	RunIndex int
	Reason   string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed run payload %s[%d]: %s", e.NodeName, e.RunIndex, e.Reason)
}

func NewMalformedInputError(nodeName string, runIndex int, reason string) *MalformedInputError {
	return &MalformedInputError{
		NodeName: nodeName,
		RunIndex: runIndex,
		Reason:   reason,
	}
}

// MalformedRunError reports an invariant violation: a normalized run whose
// end time precedes its start time. The builder never attempts repair.
type MalformedRunError struct {
	NodeName string
	RunIndex int
	Message  string
}

func (e *MalformedRunError) Error() string {
	return fmt.Sprintf("invariant violation in run %s[%d]: %s", e.NodeName, e.RunIndex, e.Message)
}

func NewMalformedRunError(nodeName string, runIndex int, message string) *MalformedRunError {
	return &MalformedRunError{
		NodeName: nodeName,
		RunIndex: runIndex,
		Message:  message,
	}
}

// UnknownParentError reports an explicit linkage hint that names a run the
// record does not contain. Explicit data is trusted, not repaired, so a
// dangling hint fails the build.
type UnknownParentError struct {
	NodeName string
	RunIndex int
	Parent   ParentRef
}

func (e *UnknownParentError) Error() string {
	return fmt.Sprintf("run %s[%d] links to unknown parent %s[%d]",
		e.NodeName, e.RunIndex, e.Parent.NodeName, e.Parent.RunIndex)
}

func NewUnknownParentError(nodeName string, runIndex int, parent ParentRef) *UnknownParentError {
	return &UnknownParentError{
		NodeName: nodeName,
		RunIndex: runIndex,
		Parent:   parent,
	}
}

func IsMalformedInput(err error) bool {
	var malformedErr *MalformedInputError
	return errors.As(err, &malformedErr)
}

func IsMalformedRun(err error) bool {
	var invariantErr *MalformedRunError
	return errors.As(err, &invariantErr)
}

func IsUnknownParent(err error) bool {
	var parentErr *UnknownParentError
	return errors.As(err, &parentErr)
}

func IsEmptyInput(err error) bool {
	return errors.Is(err, ErrEmptyInput)
}

func IsInvalidConfig(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}
