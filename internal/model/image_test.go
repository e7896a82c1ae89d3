package model

import "testing"

func TestImageRecord_Title(t *testing.T) {
	tests := []struct {
		tags     string
		expected string
	}{
		{"red fox running in snow field today", "Red Fox Running In Snow..."},
		{"red fox running in snow", "Red Fox Running In Snow"},
		{"cat", "Cat"},
		{"cat, cute, animal", "Cat, Cute, Animal"},
		{"one two three four five six", "One Two Three Four Five..."},
		{"  spaced   out   tags  ", "Spaced Out Tags"},
		{"", "Untitled"},
		{"   ", "Untitled"},
	}

	for _, test := range tests {
		record := ImageRecord{Tags: test.tags}
		result := record.Title()
		if result != test.expected {
			t.Errorf("ImageRecord{Tags: %q}.Title() = %q, expected %q", test.tags, result, test.expected)
		}
	}
}
