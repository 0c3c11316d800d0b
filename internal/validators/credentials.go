// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/MKhiriev/legal-dms/models"
)

// Field name constants accepted by [CredentialsValidator.Validate].
const (
	// FieldUsername requires a username of 3 to 50 characters.
	FieldUsername = "username"

	// FieldEmail requires a well-formed email address.
	FieldEmail = "email"

	// FieldPassword requires a password of at least 6 and at most 72 bytes,
	// the longest input bcrypt accepts.
	FieldPassword = "password"

	// FieldIdentifier requires a username or an email, as accepted by login.
	FieldIdentifier = "identifier"

	// FieldPasswordPresent only requires the password to be non-empty.
	// Login uses it so that no password rule leaks through a different error.
	FieldPasswordPresent = "password_present"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 50
	maxEmailLength    = 254
	minPasswordLength = 6
	maxPasswordBytes  = 72
)

var errIdentifierRequired = errors.New("username or email is required")

// CredentialsValidator validates [models.Credentials].
type CredentialsValidator struct{}

// NewCredentialsValidator constructs a CredentialsValidator and returns it
// as the Validator interface.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate checks the named fields of a [models.Credentials] value.
// Without fields, the registration set (username, email, password) is used.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	rules := make([]*validation.FieldRules, 0, len(fields))
	for _, f := range fields {
		switch f {
		case FieldUsername:
			rules = append(rules, validation.Field(&c.Username,
				validation.Required,
				validation.RuneLength(minUsernameLength, maxUsernameLength),
			))
		case FieldEmail:
			rules = append(rules, validation.Field(&c.Email,
				validation.Required,
				validation.Length(0, maxEmailLength),
				is.Email,
			))
		case FieldPassword:
			rules = append(rules, validation.Field(&c.Password,
				validation.Required,
				validation.Length(minPasswordLength, maxPasswordBytes),
			))
		case FieldIdentifier:
			rules = append(rules, validation.Field(&c.Username,
				validation.By(identifierPresent(c.Email)),
			))
		case FieldPasswordPresent:
			rules = append(rules, validation.Field(&c.Password, validation.Required))
		default:
			return ErrUnknownField
		}
	}

	return validation.ValidateStruct(&c, rules...)
}

// identifierPresent accepts an empty username when an email is given instead.
func identifierPresent(email string) validation.RuleFunc {
	return func(value any) error {
		if username, _ := value.(string); username == "" && email == "" {
			return errIdentifierRequired
		}
		return nil
	}
}
