package dto

import "testing"

func TestPaginationRequest_Defaults(t *testing.T) {
	var p PaginationRequest
	if p.GetPage() != 1 || p.GetPageSize() != 20 || p.GetOffset() != 0 {
		t.Errorf("unexpected defaults: page=%d size=%d offset=%d", p.GetPage(), p.GetPageSize(), p.GetOffset())
	}
}

func TestPaginationRequest_Window(t *testing.T) {
	cases := []struct {
		page, size, total int
		start, end        int
	}{
		{1, 2, 5, 0, 2},
		{3, 2, 5, 4, 5},
		{4, 2, 5, 5, 5},
		{1, 20, 0, 0, 0},
		{922337203685477581, 20, 1, 1, 1},
		{1 << 62, 100, 5, 5, 5},
	}
	for _, tc := range cases {
		p := PaginationRequest{Page: tc.page, PageSize: tc.size}
		start, end := p.Window(tc.total)
		if start != tc.start || end != tc.end {
			t.Errorf("page=%d size=%d total=%d: expected [%d,%d), got [%d,%d)",
				tc.page, tc.size, tc.total, tc.start, tc.end, start, end)
		}
	}
}
