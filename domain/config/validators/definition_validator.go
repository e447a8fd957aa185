package validators

import (
	"github.com/go-playground/validator/v10"

	"elasticonf/domain/config"
	"elasticonf/pkg/errors"
)

// DefinitionValidator validates cache definitions after parsing, before any
// construction is attempted.
type DefinitionValidator struct {
	validate *validator.Validate
}

// NewDefinitionValidator creates a validator with the struct rules registered
func NewDefinitionValidator() *DefinitionValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	return &DefinitionValidator{validate: v}
}

// ValidateDefinition checks a single cache definition
func (dv *DefinitionValidator) ValidateDefinition(def config.CacheDefinition) error {
	validationErrors := errors.NewValidationErrors()

	if err := dv.validate.Struct(def); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				validationErrors.Add(fe.Field(), fieldErrorMessage(fe))
			}
		} else {
			validationErrors.Add("definition", err.Error())
		}
	}

	// Exactly one address source may be populated
	if def.Source == config.SourceStatic && def.Cluster != "" {
		validationErrors.Add("Cluster", "static cache cannot carry a cluster id")
	}
	if def.Source == config.SourceCluster && def.Address != "" {
		validationErrors.Add("Address", "cluster cache cannot carry a literal address")
	}

	return validationErrors.ErrOrNil()
}

// ValidateManager checks every definition and reference of a manager definition
func (dv *DefinitionValidator) ValidateManager(def *config.ManagerDefinition) error {
	validationErrors := errors.NewValidationErrors()

	seen := make(map[string]bool)
	for _, entry := range def.Entries {
		name := entry.EntryName()
		if seen[name] {
			validationErrors.Add("name", "duplicate cache name '"+name+"'")
			continue
		}
		seen[name] = true

		if cacheDef, ok := entry.(config.CacheDefinition); ok {
			if err := dv.ValidateDefinition(cacheDef); err != nil {
				if vErrs, ok := err.(*errors.ValidationErrors); ok {
					for _, e := range vErrs.Errors() {
						validationErrors.AddError(e)
					}
				} else {
					validationErrors.Add(name, err.Error())
				}
			}
		}
	}

	return validationErrors.ErrOrNil()
}

// fieldErrorMessage maps validator tags to operator-facing messages
func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "hostname_port":
		return "must be in host:port form"
	case "min":
		return "cannot be negative"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
