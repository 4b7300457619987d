package main

// Exit codes for the petadash CLI.
const (
	ExitOK          = 0 // Render or serve succeeded.
	ExitInvalidArgs = 1 // Invalid arguments or unreadable input.
	ExitNoData      = 2 // Source readable but no usable rows.
)

// exitCodeError carries a specific process exit code up to main.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }
