package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrCorruptDocument = errors.New("corrupt hook database")
	ErrHookNotFound    = errors.New("hook not found")
	ErrHookExists      = errors.New("hook already exists")
	ErrNoActiveHook    = errors.New("no active hook")
)

// StoreError wraps storage failures with the operation and file involved
type StoreError struct {
	Op   string
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new store error
func NewStoreError(op, path string, err error) *StoreError {
	return &StoreError{Op: op, Path: path, Err: err}
}

// HookError wraps errors with hook context
type HookError struct {
	Hook string
	Op   string
	Err  error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("hook %s: %s: %v", e.Hook, e.Op, e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}

// NewHookError creates a new hook error
func NewHookError(hook, op string, err error) *HookError {
	return &HookError{Hook: hook, Op: op, Err: err}
}
