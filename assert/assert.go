package assert

import "github.com/oomph-ac/physim/oerror"

// IsTrue panics with an *oerror.Error if ok is false. It is only used for programmer errors.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
