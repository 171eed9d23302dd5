package dto

import "testing"

func TestNewPageResponse(t *testing.T) {
	cases := []struct {
		name       string
		pageNo     int
		pageSize   int
		total      int64
		totalPages int
		last       bool
	}{
		{"first of three", 0, 2, 5, 3, false},
		{"middle", 1, 2, 5, 3, false},
		{"last partial", 2, 2, 5, 3, true},
		{"past the end", 5, 2, 5, 3, true},
		{"exact fit", 1, 5, 10, 2, true},
		{"empty", 0, 10, 0, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPageResponse(nil, tc.pageNo, tc.pageSize, tc.total)
			if p.TotalPages != tc.totalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tc.totalPages)
			}
			if p.Last != tc.last {
				t.Errorf("Last = %v, want %v", p.Last, tc.last)
			}
			if p.TotalElements != tc.total {
				t.Errorf("TotalElements = %d, want %d", p.TotalElements, tc.total)
			}
		})
	}
}
