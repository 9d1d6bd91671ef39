package group

import "github.com/takakv/electionguard-core/internal/errs"

func newInvalidArgumentf(format string, args ...any) error {
	return errs.NewInvalidArgument(format, args...)
}

func newOutOfRangef(format string, args ...any) error {
	return errs.NewOutOfRange(format, args...)
}

func newIncompatibleContext(a, b *GroupContext) error {
	return errs.NewIncompatibleContext(
		"operands come from contexts with different production-strength flags (%v vs %v)",
		a.productionStrength, b.productionStrength)
}

func newDomainErrorf(format string, args ...any) error {
	return errs.NewDomainError(format, args...)
}
