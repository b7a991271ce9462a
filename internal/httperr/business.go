package httperr

import (
	"errors"
	"fmt"
)

// BusinessError is a rule violation the client can act on. Args feed the
// user-facing message template registered for Code.
type BusinessError struct {
	Code string
	Args []any
}

func (e BusinessError) Error() string {
	if len(e.Args) == 0 {
		return e.Code
	}
	return fmt.Sprintf("%s %v", e.Code, e.Args)
}

func ErrBusiness(code string, args ...any) error {
	return BusinessError{Code: code, Args: args}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness unwraps err into a BusinessError when it is one.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
