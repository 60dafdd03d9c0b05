package validation_test

import (
	"testing"

	"go-fontaneria-backend/internal/domain"
	"go-fontaneria-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateContact_RequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		req   domain.ContactRequest
		want  domain.ValidationReason
		valid bool
	}{
		{"missing name", domain.ContactRequest{Phone: "629464508"}, domain.ReasonMissingRequired, false},
		{"missing phone", domain.ContactRequest{Name: "Ana"}, domain.ReasonMissingRequired, false},
		{"whitespace-only name", domain.ContactRequest{Name: "   ", Phone: "629464508"}, domain.ReasonMissingRequired, false},
		{"both present", domain.ContactRequest{Name: "Ana", Phone: "629464508"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateContact(&tt.req)
			if tt.valid {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.want, err.Reason)
		})
	}
}

func TestValidateContact_PhoneShape(t *testing.T) {
	bad := []string{"abc", "12", "629-ABC-508", "telefono"}
	for _, phone := range bad {
		t.Run(phone, func(t *testing.T) {
			err := validation.ValidateContact(&domain.ContactRequest{Name: "Ana", Phone: phone})
			require.NotNil(t, err)
			assert.Equal(t, domain.ReasonBadPhone, err.Reason)
		})
	}

	good := []string{"+34 629 464 508", "34629464508", "629-464-508", "(34) 629 464 508"}
	for _, phone := range good {
		t.Run(phone, func(t *testing.T) {
			assert.Nil(t, validation.ValidateContact(&domain.ContactRequest{Name: "Ana", Phone: phone}))
		})
	}
}

func TestValidateContact_Email(t *testing.T) {
	base := domain.ContactRequest{Name: "Ana", Phone: "629464508"}

	t.Run("absent email is fine", func(t *testing.T) {
		assert.Nil(t, validation.ValidateContact(&base))
	})

	bad := []string{"foo", "foo@bar", "foo bar@baz.com", "@baz.com"}
	for _, email := range bad {
		t.Run(email, func(t *testing.T) {
			req := base
			req.Email = email
			err := validation.ValidateContact(&req)
			require.NotNil(t, err)
			assert.Equal(t, domain.ReasonBadEmail, err.Reason)
		})
	}

	t.Run("valid email", func(t *testing.T) {
		req := base
		req.Email = "ana@example.com"
		assert.Nil(t, validation.ValidateContact(&req))
	})
}

func TestValidateContact_RuleOrder(t *testing.T) {
	// Empty phone trips the required-fields rule before the shape rule.
	err := validation.ValidateContact(&domain.ContactRequest{Name: "Ana", Phone: "", Email: "foo"})
	require.NotNil(t, err)
	assert.Equal(t, domain.ReasonMissingRequired, err.Reason)

	// A bad phone masks a bad email.
	err = validation.ValidateContact(&domain.ContactRequest{Name: "Ana", Phone: "abc", Email: "foo"})
	require.NotNil(t, err)
	assert.Equal(t, domain.ReasonBadPhone, err.Reason)
}
