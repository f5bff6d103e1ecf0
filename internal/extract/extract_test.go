package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"block comment with gutter",
			"/**\n * @brief Adds two numbers.\n * @param a First addend.\n */",
			"@brief Adds two numbers.\n@param a First addend.",
		},
		{
			"one-line block comment",
			"/** @brief Short and sweet. */",
			"@brief Short and sweet.",
		},
		{
			"qt style opener",
			"/*!\n * @returns The thing.\n */",
			"@returns The thing.",
		},
		{
			"triple-slash lines",
			"/// @brief Line style.\n/// More prose.",
			"@brief Line style.\nMore prose.",
		},
		{
			"bang line comments",
			"//! @brief Inner doc.",
			"@brief Inner doc.",
		},
		{
			"indented gutter",
			"    /**\n     * @note Indented.\n     */",
			"@note Indented.",
		},
		{
			"plain text untouched",
			"@brief No delimiters here.",
			"@brief No delimiters here.",
		},
		{
			"empty input",
			"",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.input))
		})
	}
}
