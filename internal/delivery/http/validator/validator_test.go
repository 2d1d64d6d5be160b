package validator

import (
	"testing"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Passes(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.CreateCategoryInput{
		Title: "Handmade",
		Slug:  "handmade-goods",
	})
	assert.NoError(t, err)
}

func TestValidate_CollectsFieldErrors(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.CreateCategoryInput{
		Title: "H",
		Slug:  "Not A Slug",
	})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	fields := validationErr.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "title", fields[0].Field)
	assert.Equal(t, "must be at least 2", fields[0].Message)
	assert.Equal(t, "slug", fields[1].Field)
	assert.Equal(t, "must be a lowercase hyphenated slug", fields[1].Message)
}

func TestValidate_CustomRules(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		input *usecase.UpsertUserInput
		valid bool
	}{
		{
			name:  "valid telegram id",
			input: &usecase.UpsertUserInput{TelegramID: "123456789"},
			valid: true,
		},
		{
			name:  "negative chat id accepted",
			input: &usecase.UpsertUserInput{TelegramID: "-100123456"},
			valid: true,
		},
		{
			name:  "non numeric telegram id",
			input: &usecase.UpsertUserInput{TelegramID: "abc"},
			valid: false,
		},
		{
			name:  "valid phone",
			input: &usecase.UpsertUserInput{TelegramID: "1", PhoneNumber: "+989121234567"},
			valid: true,
		},
		{
			name:  "short phone",
			input: &usecase.UpsertUserInput{TelegramID: "1", PhoneNumber: "12"},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_NestedFieldPath(t *testing.T) {
	v := New()

	input := &usecase.CreateStoreInput{
		Title: "Sara's Handmade",
		Socials: usecase.StoreSocialsInput{
			Telegram: usecase.TelegramChannelInput{ID: "not-numeric"},
		},
		Identity: usecase.StoreIdentityInput{
			NationalCode: "1234567890",
			Location:     usecase.StoreLocationInput{City: "Tehran"},
		},
		CategoryIDs: []uint{1},
	}

	err := v.Validate(input)
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Fields(), 1)
	assert.Equal(t, "socials.telegram.id", validationErr.Fields()[0].Field)
}
