// Package validator adapts the checksum package to declarative, field-level
// validation rules.
//
// Each exported function builds a Rule that pairs a Check with a
// translation-friendly ValidationError. Rules are evaluated with Apply, which
// collects every failure into ValidationErrors:
//
//	err := validator.Apply(
//	    validator.ValidISBN("isbn", req.ISBN),
//	    validator.ValidUPC("upc", req.UPC),
//	)
//	for _, verr := range validator.ExtractValidationErrors(err) {
//	    // verr.Field, verr.Format ("isbn", "upc", ...) and verr.Value,
//	    // the normalized code that failed its check
//	}
//
// Messages are English. TranslationKey ("validation.<format>") and
// TranslationValues (field, format, value) let callers render them through
// their own message catalogs.
package validator
