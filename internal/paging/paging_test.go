package paging

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		page, size         int
		wantPage, wantSize int
	}{
		{0, 0, 1, DefaultPageSize},
		{-3, 5, 1, 5},
		{2, 51, 2, MaxPageSize},
		{4, 1, 4, 1},
	}
	for _, c := range cases {
		p, s := Normalize(c.page, c.size)
		if p != c.wantPage || s != c.wantSize {
			t.Fatalf("Normalize(%d, %d) = (%d, %d), want (%d, %d)",
				c.page, c.size, p, s, c.wantPage, c.wantSize)
		}
	}
}

func TestNew_EmptyItemsNotNil(t *testing.T) {
	p := New[string](nil, 1, 10, 0)
	if p.Items == nil {
		t.Fatal("items must not be nil")
	}
	if p.HasNext || p.HasPrev {
		t.Fatalf("unexpected flags: %+v", p)
	}
}
