package model

import "testing"

func TestTotalPages(t *testing.T) {
	tests := []struct {
		totalHits int
		perPage   int
		expected  int
	}{
		{0, 21, 1},
		{1, 21, 1},
		{21, 21, 1},
		{22, 21, 2},
		{42, 21, 2},
		{43, 21, 3},
		{500, 24, 21},
		{500, 21, 24},
		{-5, 21, 1},
		{100, 0, 1},
	}

	for _, test := range tests {
		result := TotalPages(test.totalHits, test.perPage)
		if result != test.expected {
			t.Errorf("TotalPages(%d, %d) = %d, expected %d", test.totalHits, test.perPage, result, test.expected)
		}
	}
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		page       int
		totalPages int
		expected   int
	}{
		{0, 3, 1},
		{-1, 3, 1},
		{1, 3, 1},
		{2, 3, 2},
		{3, 3, 3},
		{4, 3, 3},
		{99, 3, 3},
		{1, 1, 1},
		{5, 0, 1},
	}

	for _, test := range tests {
		result := ClampPage(test.page, test.totalPages)
		if result != test.expected {
			t.Errorf("ClampPage(%d, %d) = %d, expected %d", test.page, test.totalPages, result, test.expected)
		}
	}
}
