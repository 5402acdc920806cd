package mapper

import (
	"fmt"

	"github.com/bjarke-xyz/applications-api/internal/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateCreate checks that dto carries every field a new application needs.
func ValidateCreate(dto ApplicationDTO) error {
	if err := validate.Struct(dto); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// ValidatePatch only checks the fields that are constrained on update;
// every field of a patch is optional.
func ValidatePatch(dto ApplicationDTO) error {
	if err := validate.StructPartial(dto, "ID"); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}
