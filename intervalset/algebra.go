package intervalset

// 二元集合运算都是对两个规范区间序列的单次从左到右扫描，
// 过程中不会展开任何单个元素，时间复杂度O(k1+k2)

// Union 返回两个集合的并集
// 另一个操作数为nil时返回ErrNilSet
func (s *IntervalSet[T]) Union(other *IntervalSet[T]) (*IntervalSet[T], error) {
	if other == nil {
		return nil, ErrNilSet
	}
	if len(s.runs) == 0 {
		return other.Copy(), nil
	}
	if len(other.runs) == 0 {
		return s.Copy(), nil
	}

	// 按起点归并两个有序序列，再归并重叠和紧邻的区间
	merged := make([]Interval[T], 0, len(s.runs)+len(other.runs))
	i, j := 0, 0
	for i < len(s.runs) && j < len(other.runs) {
		if s.runs[i].Start <= other.runs[j].Start {
			merged = append(merged, s.runs[i])
			i++
		} else {
			merged = append(merged, other.runs[j])
			j++
		}
	}
	merged = append(merged, s.runs[i:]...)
	merged = append(merged, other.runs[j:]...)

	return newFromRuns(normalizeRuns(merged, true)), nil
}

// Intersection 返回两个集合的交集
// 另一个操作数为nil时返回ErrNilSet
func (s *IntervalSet[T]) Intersection(other *IntervalSet[T]) (*IntervalSet[T], error) {
	if other == nil {
		return nil, ErrNilSet
	}

	out := make([]Interval[T], 0)
	i, j := 0, 0
	for i < len(s.runs) && j < len(other.runs) {
		if iv, ok := s.runs[i].intersect(other.runs[j]); ok {
			out = append(out, iv)
		}
		// 先结束的区间前进，终点相同时两边同时前进
		switch {
		case s.runs[i].End < other.runs[j].End:
			i++
		case other.runs[j].End < s.runs[i].End:
			j++
		default:
			i++
			j++
		}
	}
	// 两个输入都规范，交集片段天然有序且间隙不小于2
	return newFromRuns(out), nil
}

// Difference 返回差集，即属于当前集合但不属于other的元素
// 另一个操作数为nil时返回ErrNilSet
func (s *IntervalSet[T]) Difference(other *IntervalSet[T]) (*IntervalSet[T], error) {
	if other == nil {
		return nil, ErrNilSet
	}
	if len(other.runs) == 0 {
		return s.Copy(), nil
	}

	out := make([]Interval[T], 0, len(s.runs))
	j := 0
	for _, iv := range s.runs {
		cur := iv
		kept := true
		for j < len(other.runs) {
			b := other.runs[j]
			if b.End < cur.Start {
				// b整体在cur左侧，前进
				j++
				continue
			}
			if b.Start > cur.End {
				// b整体在cur右侧，cur剩余部分全部保留
				break
			}
			// 有交集：b起点之前的部分保留
			if b.Start > cur.Start {
				out = append(out, Interval[T]{Start: cur.Start, End: b.Start - 1})
			}
			if b.End < cur.End {
				// b在cur内部结束，剩余部分继续与后面的b区间比较
				cur.Start = b.End + 1
				j++
			} else {
				// cur剩余部分被b完全覆盖
				// b可能还与下一个区间相交，j不前进
				kept = false
				break
			}
		}
		if kept {
			out = append(out, cur)
		}
	}
	// 差集片段是原规范区间的子区间，切口处至少移除了一个元素，结果天然规范
	return newFromRuns(out), nil
}

// SymmetricDifference 返回对称差集，即恰好属于其中一个集合的元素
// 另一个操作数为nil时返回ErrNilSet
func (s *IntervalSet[T]) SymmetricDifference(other *IntervalSet[T]) (*IntervalSet[T], error) {
	if other == nil {
		return nil, ErrNilSet
	}
	left, err := s.Difference(other)
	if err != nil {
		return nil, err
	}
	right, err := other.Difference(s)
	if err != nil {
		return nil, err
	}
	return left.Union(right)
}

// IsDisjoint 检查两个集合是否没有公共元素
// 发现第一个交集就返回，不构造结果集合；nil被视为空集合
func (s *IntervalSet[T]) IsDisjoint(other *IntervalSet[T]) bool {
	if other == nil {
		return true
	}
	i, j := 0, 0
	for i < len(s.runs) && j < len(other.runs) {
		if s.runs[i].overlaps(other.runs[j]) {
			return false
		}
		if s.runs[i].End < other.runs[j].End {
			i++
		} else {
			j++
		}
	}
	return true
}

// IsSubset 检查当前集合是否是other的子集
// 单次扫描：每个区间都必须被other的某个区间完整覆盖
// nil被视为空集合
func (s *IntervalSet[T]) IsSubset(other *IntervalSet[T]) bool {
	if other == nil {
		return len(s.runs) == 0
	}
	j := 0
	for _, iv := range s.runs {
		for j < len(other.runs) && other.runs[j].End < iv.Start {
			j++
		}
		// other规范，不存在跨多个区间的连续覆盖
		if j >= len(other.runs) || other.runs[j].Start > iv.Start || iv.End > other.runs[j].End {
			return false
		}
	}
	return true
}

// IsSuperset 检查当前集合是否是other的超集
func (s *IntervalSet[T]) IsSuperset(other *IntervalSet[T]) bool {
	if other == nil {
		return true
	}
	return other.IsSubset(s)
}

// IsProperSubset 检查当前集合是否是other的真子集
func (s *IntervalSet[T]) IsProperSubset(other *IntervalSet[T]) bool {
	return s.IsSubset(other) && !s.Equal(other)
}

// IsProperSuperset 检查当前集合是否是other的真超集
func (s *IntervalSet[T]) IsProperSuperset(other *IntervalSet[T]) bool {
	return s.IsSuperset(other) && !s.Equal(other)
}
