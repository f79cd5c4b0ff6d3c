package validate

import (
	"fmt"

	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/httpx"

	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a request payload and reports failures as invalid-argument
// errors so the boundary maps them to 400.
func Struct(in any) error {
	if err := v.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", httpx.ErrInvalid, err)
	}
	return nil
}
