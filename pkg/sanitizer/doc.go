// Package sanitizer provides small string transforms used to clean code strings
// before they are checked, together with helpers to chain them.
//
// Every transform has the signature func(string) string, so transforms can be
// combined into pipelines with Apply or stored for reuse with Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.FoldWidth,
//	    sanitizer.StripSeparators,
//	    sanitizer.Trim,
//	)
//
//	clean(" ９７８-１-５６６１９-９０９-４ ") // "9781566199094"
//
// FoldWidth relies on golang.org/x/text/width. The package is stateless and
// safe for concurrent use.
package sanitizer
