package cartridge

import (
	"github.com/ezrec/microvision/translate"
)

var f = translate.From

// ErrImage reports a cartridge that failed to load.
type ErrImage struct {
	Name string
	Err  error
}

func (err *ErrImage) Error() string {
	name := err.Name
	if name == "" {
		name = f("cartridge")
	}
	return f("%v: %v", name, err.Err)
}

func (err *ErrImage) Unwrap() error {
	return err.Err
}
