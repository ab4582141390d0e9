package set

import (
	"sort"
	"testing"
)

func sortedOf(s Set[int]) []int {
	out := s.ToSlice()
	sort.Ints(out)
	return out
}

func TestHashSet_AddContains(t *testing.T) {
	s := New(1, 2, 2, 3)

	if s.Size() != 3 {
		t.Errorf("duplicates should be ignored, expected size 3, got %d", s.Size())
	}
	if !s.Contains(2) {
		t.Error("set should contain 2")
	}
	if s.Contains(9) {
		t.Error("set should not contain 9")
	}
	if s.Add(1) {
		t.Error("adding an existing element should return false")
	}
	if !s.Add(9) {
		t.Error("adding a new element should return true")
	}
}

func TestHashSet_Algebra(t *testing.T) {
	a := New(1, 2, 3)
	b := New(3, 4)

	cases := []struct {
		name string
		got  Set[int]
		want []int
	}{
		{"union", a.Union(b), []int{1, 2, 3, 4}},
		{"intersection", a.Intersection(b), []int{3}},
		{"difference", a.Difference(b), []int{1, 2}},
		{"symmetric difference", a.SymmetricDifference(b), []int{1, 2, 4}},
	}

	for _, c := range cases {
		got := sortedOf(c.got)
		if len(got) != len(c.want) {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, got)
			continue
		}
		for i, v := range c.want {
			if got[i] != v {
				t.Errorf("%s: expected %v, got %v", c.name, c.want, got)
				break
			}
		}
	}
}

func TestHashSet_Predicates(t *testing.T) {
	a := New(1, 2)
	b := New(1, 2, 3)
	c := New(8, 9)

	if !a.IsSubset(b) {
		t.Error("a should be a subset of b")
	}
	if b.IsSubset(a) {
		t.Error("b should not be a subset of a")
	}
	if !b.IsSuperset(a) {
		t.Error("b should be a superset of a")
	}
	if !a.IsDisjoint(c) {
		t.Error("a and c should be disjoint")
	}
	if a.IsDisjoint(b) {
		t.Error("a and b should not be disjoint")
	}
}
