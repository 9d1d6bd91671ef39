package elgamal

import "github.com/takakv/electionguard-core/internal/errs"

func newInvalidArgumentf(format string, args ...any) error {
	return errs.NewInvalidArgument(format, args...)
}
