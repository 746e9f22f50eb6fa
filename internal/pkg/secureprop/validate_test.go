package secureprop

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_Validate(t *testing.T) {
	def := newPasswordDef(t)

	tests := []struct {
		name         string
		plaintext    *string
		confirmation *string
		want         map[string]Kind
	}{
		{
			name:      "blank without confirmation",
			plaintext: ptr(""),
			want:      map[string]Kind{"password": KindBlank},
		},
		{
			name: "never assigned",
			want: map[string]Kind{"password": KindBlank},
		},
		{
			name:      "whitespace is blank",
			plaintext: ptr("   "),
			want:      map[string]Kind{"password": KindBlank},
		},
		{
			name:         "confirmation mismatch",
			plaintext:    ptr("abc"),
			confirmation: ptr("abd"),
			want:         map[string]Kind{"password_confirmation": KindConfirmation},
		},
		{
			name:         "confirmation match",
			plaintext:    ptr("abc"),
			confirmation: ptr("abc"),
			want:         map[string]Kind{},
		},
		{
			name:         "blank confirmation is skipped",
			plaintext:    ptr("abc"),
			confirmation: ptr(""),
			want:         map[string]Kind{},
		},
		{
			name:      "73 characters",
			plaintext: ptr(strings.Repeat("a", 73)),
			want:      map[string]Kind{"password": KindTooLong},
		},
		{
			name:      "72 characters",
			plaintext: ptr(strings.Repeat("a", 72)),
			want:      map[string]Kind{},
		},
		{
			name:         "blank and mismatch accumulate",
			confirmation: ptr("something"),
			want: map[string]Kind{
				"password":              KindBlank,
				"password_confirmation": KindConfirmation,
			},
		},
		{
			name:         "too long and mismatch accumulate",
			plaintext:    ptr(strings.Repeat("b", 80)),
			confirmation: ptr("b"),
			want: map[string]Kind{
				"password":              KindTooLong,
				"password_confirmation": KindConfirmation,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := def.New()
			//nolint:errcheck // too long inputs fail to hash, validation still sees them
			f.SetPlaintext(tt.plaintext)
			f.SetConfirmation(tt.confirmation)

			errs := f.Validate()

			got := make(map[string]Kind, len(errs))
			for _, e := range errs {
				got[e.Field] = e.Kind
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestField_ValidateDisabled(t *testing.T) {
	def := newPasswordDef(t, WithValidations(false))
	f := def.New()
	f.SetConfirmation(ptr("nomatch"))

	assert.Nil(t, f.Validate())
}

func TestField_ValidateMaxLengthOption(t *testing.T) {
	def := newPasswordDef(t, WithMaxLength(8))
	f := def.New()
	require.NoError(t, f.Set("123456789"))

	errs := f.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, "Password is too long (maximum is 8 characters)", errs[0].Error())

	// out of range values keep the default
	def = newPasswordDef(t, WithMaxLength(500))
	f = def.New()
	require.NoError(t, f.Set(strings.Repeat("a", MaxLength)))
	assert.Empty(t, f.Validate())
}

func TestErrors_Messages(t *testing.T) {
	errs := Errors{
		{Field: "password", Kind: KindBlank},
		{Field: "password_confirmation", Kind: KindConfirmation, Attribute: "password"},
	}

	assert.Equal(t, "Password can't be blank; Password confirmation doesn't match Password", errs.Error())
	assert.Equal(t, map[string]string{
		"password":              "can't be blank",
		"password_confirmation": "doesn't match Password",
	}, errs.Fields())

	assert.Len(t, errs.On("password"), 1)
	assert.True(t, errs.Has("password", KindBlank))
	assert.False(t, errs.Has("password", KindTooLong))
	assert.Equal(t, "Pin is invalid", (&Error{Field: "pin", Kind: "weird"}).Error())
}

func TestErrors_FieldsJoinsSameField(t *testing.T) {
	errs := Errors{
		{Field: "password", Kind: KindBlank},
		{Field: "password", Kind: KindTooLong, Count: 72},
	}

	assert.Equal(t, map[string]string{
		"password": "can't be blank, is too long (maximum is 72 characters)",
	}, errs.Fields())
}
