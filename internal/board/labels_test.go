package board

import "testing"

func TestLabelFaceIsCachedPerSize(t *testing.T) {
	a := labelFace(12)
	b := labelFace(12)
	if a != b {
		t.Fatal("same size should return the cached face")
	}
	c := labelFace(18)
	if a == c {
		t.Fatal("different sizes should get different faces")
	}
}

func TestLabelWidthGrowsWithText(t *testing.T) {
	short := labelWidth("CM", 12)
	long := labelWidth("CM CM CM", 12)
	if short <= 0 {
		t.Fatalf("expected positive width, got %d", short)
	}
	if long <= short {
		t.Fatalf("longer text should measure wider, got %d vs %d", long, short)
	}
	if labelWidth("", 12) != 0 {
		t.Fatal("empty text should measure zero")
	}
}
