package app

// ExitError carries a process exit code through the run flow's error
// returns, so Execute can distinguish usage errors (code 2) from
// run failures (code 1) without calling os.Exit itself.
type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) Error() string {
	if e.Err == nil {
		return "exit"
	}
	return e.Err.Error()
}

func (e ExitError) Unwrap() error {
	return e.Err
}

func ExitWithError(code int, err error) error {
	return ExitError{Code: code, Err: err}
}

func asExitError(err error) (ExitError, bool) {
	if err == nil {
		return ExitError{}, false
	}
	ee, ok := err.(ExitError)
	return ee, ok
}
