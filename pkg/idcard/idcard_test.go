package idcard_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/idcard/pkg/idcard"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		locale string
		want   bool
	}{
		{name: "ES valid", input: "12345678Z", locale: "ES", want: true},
		{name: "ES wrong letter", input: "12345678A", locale: "ES", want: false},
		{name: "ES lowercase", input: "12345678z", locale: "ES", want: true},
		{name: "IN valid", input: "2984 4886 3364", locale: "IN", want: true},
		{name: "NO all zeros", input: "00000000000", locale: "NO", want: false},
		{name: "NO valid", input: "29028912364", locale: "NO", want: true},
		{name: "he-IL valid", input: "219472156", locale: "he-IL", want: true},
		{name: "ar-TN valid", input: "09958092", locale: "ar-TN", want: true},
		{name: "zh-CN valid", input: "110101199003074477", locale: "zh-CN", want: true},
		{name: "zh-CN Feb 30", input: "110105202402301235", locale: "zh-CN", want: false},
		{name: "zh-TW valid", input: "A123456789", locale: "zh-TW", want: true},
		{name: "locale mismatch", input: "A123456789", locale: "ES", want: false},
		{name: "any accepts ES", input: "12345678Z", locale: "any", want: true},
		{name: "any accepts zh-TW", input: "A123456789", locale: "any", want: true},
		{name: "any rejects garbage", input: "not an id", locale: "any", want: false},
		{name: "any rejects empty", input: "", locale: "any", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := idcard.Validate(tt.input, tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate_InvalidLocale(t *testing.T) {
	t.Parallel()

	for _, locale := range []string{"XX", "es", "ANY", "", "zh-cn"} {
		ok, err := idcard.Validate("12345678Z", locale)
		require.Error(t, err, locale)
		assert.False(t, ok)
		assert.ErrorIs(t, err, idcard.ErrInvalidLocale)

		var localeErr *idcard.InvalidLocaleError
		require.True(t, errors.As(err, &localeErr))
		assert.Equal(t, locale, localeErr.Locale)
		assert.Equal(t, "invalid locale '"+locale+"'", err.Error())
	}
}

func TestRegistry_ValidateAny(t *testing.T) {
	t.Parallel()

	t.Run("empty registry", func(t *testing.T) {
		t.Parallel()

		r := idcard.MustNewRegistry()
		ok, err := r.Validate("12345678Z", "any")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("first success wins in registration order", func(t *testing.T) {
		t.Parallel()

		var calls []idcard.Locale
		track := func(l idcard.Locale, ok bool) idcard.Validator {
			return func(string) bool {
				calls = append(calls, l)
				return ok
			}
		}

		r := idcard.MustNewRegistry(
			idcard.Entry{Locale: "one", Validator: track("one", false)},
			idcard.Entry{Locale: "two", Validator: track("two", true)},
			idcard.Entry{Locale: "three", Validator: track("three", true)},
		)

		locale, ok := r.Match("x")
		assert.True(t, ok)
		assert.Equal(t, idcard.Locale("two"), locale)
		assert.Equal(t, []idcard.Locale{"one", "two"}, calls)

		calls = nil
		valid, err := r.Validate("x", "any")
		require.NoError(t, err)
		assert.True(t, valid)
		assert.Equal(t, []idcard.Locale{"one", "two"}, calls)
	})

	t.Run("all reject", func(t *testing.T) {
		t.Parallel()

		r := idcard.MustNewRegistry(
			idcard.Entry{Locale: "one", Validator: always(false)},
			idcard.Entry{Locale: "two", Validator: always(false)},
		)
		locale, ok := r.Match("x")
		assert.False(t, ok)
		assert.Empty(t, locale)
	})
}

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  idcard.Locale
	}{
		{"12345678Z", idcard.Spain},
		{"298448863364", idcard.India},
		{"29028912364", idcard.Norway},
		{"219472156", idcard.Israel},
		{"12345678", idcard.Tunisia},
		{"110101199003074477", idcard.China},
		{"A123456789", idcard.Taiwan},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, ok := idcard.Match(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSupported(t *testing.T) {
	t.Parallel()

	for _, l := range idcard.Default().Locales() {
		assert.True(t, idcard.IsSupported(string(l)), l)
	}
	assert.True(t, idcard.IsSupported("any"))
	assert.False(t, idcard.IsSupported("XX"))
	assert.False(t, idcard.IsSupported("es"))
}

func TestValidate_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []struct{ input, locale string }{
		{"12345678Z", "ES"},
		{"12345678A", "ES"},
		{"298448863364", "IN"},
		{"A123456789", "zh-TW"},
		{"219472156", "any"},
	}

	for _, in := range inputs {
		first, err := idcard.Validate(in.input, in.locale)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			got, err := idcard.Validate(in.input, in.locale)
			require.NoError(t, err)
			assert.Equal(t, first, got)
		}
	}
}

func TestValidate_Concurrent(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				ok, err := idcard.Validate("110101199003074477", "any")
				assert.NoError(t, err)
				assert.True(t, ok)
			}
		}()
	}
	wg.Wait()
}
