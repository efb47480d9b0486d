package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidMonth(t *testing.T) {
	valid := []string{
		"January 2023",
		"June 2023",
		"December 1999",
		"September 2100",
	}
	for _, m := range valid {
		assert.True(t, ValidMonth(m), "expected %q to be valid", m)
	}

	invalid := []string{
		"",
		"June",
		"2023",
		"june 2023",
		"Jun 2023",
		"June 23",
		"June 2023 ",
		" June 2023",
		"13 2023",
		"June-2023",
	}
	for _, m := range invalid {
		assert.False(t, ValidMonth(m), "expected %q to be invalid", m)
	}
}
