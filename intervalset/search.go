package intervalset

import "sort"

// locate 在规范区间序列中定位值v
// 找到包含v的区间时返回其下标和true
// 否则返回v应插入的位置（第一个起点大于v的区间下标）和false
func (s *IntervalSet[T]) locate(v T) (int, bool) {
	// 找到第一个起点大于v的区间，候选区间是它的前一个
	idx := sort.Search(len(s.runs), func(i int) bool {
		return s.runs[i].Start > v
	})
	if idx > 0 && v <= s.runs[idx-1].End {
		return idx - 1, true
	}
	return idx, false
}

// Contains 检查值v是否属于集合
// 时间复杂度O(log k)，k为区间个数而非元素个数
func (s *IntervalSet[T]) Contains(v T) bool {
	_, found := s.locate(v)
	return found
}

// ContainsAll 检查集合是否包含所有给定的值
func (s *IntervalSet[T]) ContainsAll(values ...T) bool {
	for _, v := range values {
		if !s.Contains(v) {
			return false
		}
	}
	return true
}
