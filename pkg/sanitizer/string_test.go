package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/checkdigit/pkg/sanitizer"
)

func TestTrim(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "978 1", sanitizer.Trim(" \t978 1\n "))
	assert.Equal(t, "", sanitizer.Trim("   "))
	assert.Equal(t, "", sanitizer.Trim(""))
}

func TestRemoveChars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		chars    string
		expected string
	}{
		{name: "removes every listed char", input: "1-2 3.4", chars: "- .", expected: "1234"},
		{name: "empty char set", input: "1-2", chars: "", expected: "1-2"},
		{name: "empty input", input: "", chars: "-", expected: ""},
		{name: "multibyte chars", input: "1－2", chars: "－", expected: "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.RemoveChars(tt.input, tt.chars))
		})
	}
}

func TestStripSeparators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "hyphens", input: "978-1-86197-876-9", expected: "9781861978769"},
		{name: "interior spaces", input: "0 36000 29145 2", expected: "036000291452"},
		{name: "leading and trailing spaces", input: " 123 ", expected: "123"},
		{name: "keeps other whitespace", input: "1\t2", expected: "1\t2"},
		{name: "keeps letters", input: "1-55404-295-X", expected: "155404295X"},
		{name: "only separators", input: "- - -", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.StripSeparators(tt.input))
		})
	}
}

func TestFoldWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "full-width digits", input: "０１２３４５６７８９", expected: "0123456789"},
		{name: "full-width hyphen", input: "９７８－１", expected: "978-1"},
		{name: "full-width X", input: "Ｘｘ", expected: "Xx"},
		{name: "ideographic space", input: "1　2", expected: "1 2"},
		{name: "ascii unchanged", input: "0-201-88295-7", expected: "0-201-88295-7"},
		{name: "arabic-indic digits unchanged", input: "٠٢٠١", expected: "٠٢٠١"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.FoldWidth(tt.input))
		})
	}
}
