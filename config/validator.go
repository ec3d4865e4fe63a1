package config

import (
	"sync"

	"github.com/grovetools/svcman/schema"
)

// SchemaValidator validates configuration documents against the generated schema.
type SchemaValidator struct {
	validator *schema.Validator
}

var (
	validatorOnce   sync.Once
	sharedValidator *schema.Validator
	validatorErr    error
)

// NewSchemaValidator returns a validator for the configuration schema. The
// schema is generated and compiled once per process.
func NewSchemaValidator() (*SchemaValidator, error) {
	validatorOnce.Do(func() {
		data, err := GenerateSchema()
		if err != nil {
			validatorErr = err
			return
		}
		sharedValidator, validatorErr = schema.NewValidator("svcman.schema.json", data)
	})
	if validatorErr != nil {
		return nil, validatorErr
	}
	return &SchemaValidator{validator: sharedValidator}, nil
}

// Validate validates a decoded configuration document.
func (v *SchemaValidator) Validate(document interface{}) error {
	return v.validator.Validate(document)
}
