package intervalset

import (
	"math"
	"testing"
)

func TestNew_CoalescesRuns(t *testing.T) {
	// 乱序且有重复的输入应归并为规范区间序列
	s := New(7, 1, 3, 2, 8, 2)

	want := []Interval[int]{{1, 3}, {7, 8}}
	got := s.Intervals()

	if len(got) != len(want) {
		t.Fatalf("expected %d runs, got %d", len(want), len(got))
	}
	for i, iv := range want {
		if got[i] != iv {
			t.Errorf("run %d mismatch: expected %v, got %v", i, iv, got[i])
		}
	}
}

func TestNew_Empty(t *testing.T) {
	s := New[int]()

	if !s.IsEmpty() {
		t.Error("empty input should produce an empty set")
	}
	if s.Runs() != 0 {
		t.Errorf("empty set should have 0 runs, got %d", s.Runs())
	}
	if s.Len() != 0 {
		t.Errorf("empty set should have 0 elements, got %d", s.Len())
	}
}

func TestSingle(t *testing.T) {
	s := Single(42)

	got := s.Intervals()
	if len(got) != 1 || got[0].Start != 42 || got[0].End != 42 {
		t.Errorf("single-value set should have one run [42,42], got %v", got)
	}
	if s.Len() != 1 {
		t.Errorf("single-value set should have 1 element, got %d", s.Len())
	}
}

func TestContains(t *testing.T) {
	s := New(1, 2, 3, 7, 8)

	for _, v := range []int{1, 2, 3, 7, 8} {
		if !s.Contains(v) {
			t.Errorf("set should contain %d", v)
		}
	}
	for _, v := range []int{0, 4, 5, 6, 9, -1} {
		if s.Contains(v) {
			t.Errorf("set should not contain %d", v)
		}
	}
}

func TestLen_CountsElements(t *testing.T) {
	s := New(1, 2, 3, 7, 8)

	if s.Len() != 5 {
		t.Errorf("expected 5 elements, got %d", s.Len())
	}
	if s.Runs() != 2 {
		t.Errorf("expected 2 runs, got %d", s.Runs())
	}
}

func TestLen_SaturatesOnHugeRuns(t *testing.T) {
	// 宽度超出int表示范围的区间不能让元素计数回绕为负数
	iv := Interval[int64]{Start: 0, End: math.MaxInt64}
	if iv.Count() != math.MaxInt {
		t.Errorf("expected Count to saturate at math.MaxInt, got %d", iv.Count())
	}

	full := Interval[int64]{Start: math.MinInt64, End: math.MaxInt64}
	if full.Count() != math.MaxInt {
		t.Errorf("expected Count of the full int64 range to saturate, got %d", full.Count())
	}

	s, err := FromIntervals([]Interval[int64]{{Start: 0, End: math.MaxInt64}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != math.MaxInt {
		t.Errorf("expected Len to saturate at math.MaxInt, got %d", s.Len())
	}
	if s.Runs() != 1 {
		t.Errorf("expected 1 run, got %d", s.Runs())
	}

	// 多个超宽区间求和时同样不能回绕
	wide, err := FromIntervals([]Interval[int64]{
		{Start: math.MinInt64, End: -2},
		{Start: 0, End: math.MaxInt64},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wide.Len() != math.MaxInt {
		t.Errorf("expected summed Len to saturate at math.MaxInt, got %d", wide.Len())
	}
}

func TestSmallestLargest(t *testing.T) {
	s := New(5, 1, 9, 2)

	lo, err := s.Smallest()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lo != 1 {
		t.Errorf("expected smallest 1, got %d", lo)
	}

	hi, err := s.Largest()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hi != 9 {
		t.Errorf("expected largest 9, got %d", hi)
	}
}

func TestSmallestLargest_EmptySet(t *testing.T) {
	s := New[int]()

	if _, err := s.Smallest(); err != ErrEmptySet {
		t.Errorf("expected ErrEmptySet, got %v", err)
	}
	if _, err := s.Largest(); err != ErrEmptySet {
		t.Errorf("expected ErrEmptySet, got %v", err)
	}
}

func TestCopy_Independent(t *testing.T) {
	s := New(1, 2, 3)
	c := s.Copy()

	if !s.Equal(c) {
		t.Error("copy should equal the original")
	}

	// 修改副本的区间存储不应影响原集合
	runs := c.Intervals()
	runs[0].Start = 100
	if !s.Contains(1) {
		t.Error("original set should be unaffected by changes to returned intervals")
	}
}

func TestEqual(t *testing.T) {
	a := New(1, 2, 3, 7)
	b := New(7, 3, 2, 1)
	c := New(1, 2, 3)

	if !a.Equal(b) {
		t.Error("sets with the same elements should be equal")
	}
	if a.Equal(c) {
		t.Error("sets with different elements should not be equal")
	}
	if !New[int]().Equal(nil) {
		t.Error("empty set should equal nil")
	}
	if a.Equal(nil) {
		t.Error("non-empty set should not equal nil")
	}
}

func TestHash_EqualSetsSameHash(t *testing.T) {
	a := New(1, 2, 3, 10, 11)
	b := New(11, 10, 3, 2, 1)

	if a.Hash() != b.Hash() {
		t.Error("equal sets should have the same hash")
	}
}

func TestFromIntervals_NormalizesOverlap(t *testing.T) {
	s, err := FromIntervals([]Interval[int]{{5, 9}, {1, 3}, {4, 6}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := s.Intervals()
	if len(got) != 1 || got[0] != (Interval[int]{1, 9}) {
		t.Errorf("overlapping and adjacent intervals should coalesce to [1,9], got %v", got)
	}
}

func TestFromIntervals_Sorted(t *testing.T) {
	s, err := FromIntervals([]Interval[int]{{1, 2}, {10, 12}}, WithSorted())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Len() != 5 {
		t.Errorf("expected 5 elements, got %d", s.Len())
	}
}

func TestFromIntervals_ExclusiveEnd(t *testing.T) {
	s, err := FromIntervals([]Interval[int]{{1, 4}, {10, 10}}, WithExclusiveEnd())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// [1,4)覆盖1..3，单点区间保持为该点本身
	if !s.ContainsAll(1, 2, 3, 10) {
		t.Errorf("expected set to contain 1,2,3,10, got %v", s)
	}
	if s.Contains(4) {
		t.Error("exclusive end should not be contained")
	}
}

func TestFromIntervals_Invalid(t *testing.T) {
	if _, err := FromIntervals([]Interval[int]{{5, 3}}); err != ErrInvalidInterval {
		t.Errorf("expected ErrInvalidInterval, got %v", err)
	}
	// 开区间[4,2)调整后起点仍大于终点
	if _, err := FromIntervals([]Interval[int]{{4, 2}}, WithExclusiveEnd()); err != ErrInvalidInterval {
		t.Errorf("expected ErrInvalidInterval, got %v", err)
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		values []int
		want   string
	}{
		{nil, ""},
		{[]int{5}, "5"},
		{[]int{1, 2, 3, 7, 9, 10}, "1-3,7,9-10"},
		{[]int{-3, -2, 0}, "-3--2,0"},
	}

	for _, c := range cases {
		got := FromSlice(c.values).String()
		if got != c.want {
			t.Errorf("String(%v): expected %q, got %q", c.values, c.want, got)
		}
	}
}

func TestFeather(t *testing.T) {
	s := New(5, 6, 10)

	f, err := s.Feather(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// [5,6]和[10,10]各向两侧扩展1后为[4,7]和[9,11]，间隙为2，保持独立
	got := f.Intervals()
	want := []Interval[int]{{4, 7}, {9, 11}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("expected runs %v, got %v", want, got)
	}

	// 扩展2后两个区间接触，应归并为一个
	f2, err := s.Feather(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f2.Runs() != 1 {
		t.Errorf("expected a single run after feathering by 2, got %v", f2.Intervals())
	}
}

func TestFeather_Negative(t *testing.T) {
	if _, err := New(1, 2).Feather(-1); err != ErrInvalidInterval {
		t.Errorf("expected ErrInvalidInterval, got %v", err)
	}
}

func TestFeather_SaturatesAtTypeBounds(t *testing.T) {
	s := New[uint8](0, 255)

	f, err := s.Feather(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !f.Contains(0) || !f.Contains(255) {
		t.Errorf("feathered set should still cover the type bounds, got %v", f)
	}
	if !isCanonical(f.Intervals()) {
		t.Errorf("feathered set should be canonical, got %v", f.Intervals())
	}
}

func TestCanonicalInvariant_AfterConstruction(t *testing.T) {
	cases := [][]int{
		{},
		{1},
		{1, 1, 1},
		{3, 1, 2, 9, 8, 7, 100},
		{-5, -4, -3, 0, 1, 5},
	}

	for _, values := range cases {
		s := FromSlice(values)
		if !isCanonical(s.Intervals()) {
			t.Errorf("set built from %v is not canonical: %v", values, s.Intervals())
		}
	}
}

func TestUnsignedElements(t *testing.T) {
	s := New[uint16](1, 2, 3, 65535)

	if !s.Contains(65535) {
		t.Error("set should contain the maximum uint16 value")
	}
	if s.Runs() != 2 {
		t.Errorf("expected 2 runs, got %d", s.Runs())
	}
}
