package cmd

import "os"

// Custom error carrying an exit code.
//
// os.Exit() bypasses deferred functions. Returning an errorCode instead
// lets the caller unwind deferred functions before exiting. run() uses it
// to propagate a child command's exit code as conf2env's own.
type errorCode struct {
	code    int
	message string
}

func exitCode(code int) errorCode {
	return errorCode{code: code}
}

func (err errorCode) Error() string {
	return err.message
}

func (err errorCode) Exit() {
	os.Exit(err.code)
}
