// Package validator provides declarative validation rules for identity-card
// numbers that compose with other field checks.
//
// A Rule couples a boolean Check function with translation-friendly error
// metadata. Rules are evaluated with Apply, which aggregates every failure into
// a ValidationErrors slice that satisfies the error interface, so several
// field-level problems can be returned from a single call.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredIdentityCard("national_id", req.NationalID),
//	    validator.ValidIdentityCardLocale("country", req.Country),
//	    validator.ValidIdentityCard("national_id", req.NationalID, req.Country),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // inspect verrs.Get("national_id"), verrs[i].TranslationKey, ...
//	}
//
// # Translation keys
//
//   - validation.identity_card_required – empty number
//   - validation.identity_card          – number fails the locale checksum or format
//   - validation.identity_card_locale   – locale is neither supported nor "any"
//
// # Error Handling
//
// ValidationErrors implements Error and Is, so errors.Is(err, ErrValidationFailed)
// detects a validation failure while errors.As exposes the field details.
// An unsupported locale is reported as a field error here rather than as the
// *idcard.InvalidLocaleError returned by idcard.Validate, because the locale
// usually comes from user input at this layer.
package validator
