package intervalset

// Iterator 按升序逐个产出集合覆盖的整数
// 迭代器持有当前区间下标和下一个要产出的值，
// 每次调用Iter都会返回一个从头开始的新迭代器，互相独立
type Iterator[T Integer] struct {
	runs []Interval[T]
	idx  int  // 当前区间下标
	next T    // 当前区间内下一个要产出的值
	done bool // 迭代是否已经结束
}

// Iter 返回一个新的迭代器，从集合的最小元素开始
func (s *IntervalSet[T]) Iter() *Iterator[T] {
	it := &Iterator[T]{runs: s.runs}
	if len(s.runs) > 0 {
		it.next = s.runs[0].Start
	}
	return it
}

// Next 返回下一个元素
// 所有元素产出完毕后第二个返回值为false
func (it *Iterator[T]) Next() (T, bool) {
	if it.done || it.idx >= len(it.runs) {
		var zero T
		return zero, false
	}

	v := it.next
	if v == it.runs[it.idx].End {
		// 当前区间产出完毕，移动到下一个区间
		// 不计算v+1，避免在类型最大值处溢出
		it.idx++
		if it.idx < len(it.runs) {
			it.next = it.runs[it.idx].Start
		} else {
			it.done = true
		}
	} else {
		it.next = v + 1
	}
	return v, true
}

// ForEach 按升序遍历所有元素并执行回调函数
// 回调返回false时停止遍历
func (s *IntervalSet[T]) ForEach(fn func(v T) bool) {
	for _, iv := range s.runs {
		v := iv.Start
		for {
			if !fn(v) {
				return
			}
			if v == iv.End {
				break
			}
			v++
		}
	}
}

// Values 返回集合所有元素组成的升序切片
func (s *IntervalSet[T]) Values() []T {
	out := make([]T, 0, s.Len())
	s.ForEach(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}
