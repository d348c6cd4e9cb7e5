package elem

import (
	"fmt"
	"slices"

	"github.com/arloliu/pgarray/errs"
	"github.com/arloliu/pgarray/format"
)

func checkType(name string, accepted []format.Oid, oid format.Oid) error {
	if slices.Contains(accepted, oid) {
		return nil
	}

	return fmt.Errorf("%w: %s codec cannot handle element type %s", errs.ErrElementTypeMismatch, name, oid)
}

func checkSize(name string, want int, src []byte) error {
	if len(src) == want {
		return nil
	}

	return fmt.Errorf("%w: %s needs %d bytes, got %d", errs.ErrInvalidElementSize, name, want, len(src))
}
