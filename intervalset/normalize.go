package intervalset

import (
	"sort"
)

// runsFromValues 将任意整数序列归并为规范区间序列
// 先排序去重，再单次扫描：连续值扩展当前区间，出现间隙时开启新区间
func runsFromValues[T Integer](values []T) []Interval[T] {
	if len(values) == 0 {
		return nil
	}

	sorted := make([]T, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	runs := make([]Interval[T], 0)
	cur := Interval[T]{Start: sorted[0], End: sorted[0]}
	for _, v := range sorted[1:] {
		switch {
		case v == cur.End:
			// 重复值，跳过
		case v == cur.End+1:
			// 连续值，扩展当前区间
			cur.End = v
		default:
			runs = append(runs, cur)
			cur = Interval[T]{Start: v, End: v}
		}
	}
	return append(runs, cur)
}

// normalizeRuns 将可能重叠或紧邻的区间序列归并为规范形式
// sorted为true时认为输入已按起点升序排序，否则先排序
// 输入切片不会被修改，返回的切片为新分配的存储
func normalizeRuns[T Integer](ivs []Interval[T], sorted bool) []Interval[T] {
	if len(ivs) == 0 {
		return nil
	}

	src := ivs
	if !sorted {
		src = make([]Interval[T], len(ivs))
		copy(src, ivs)
		sort.Slice(src, func(i, j int) bool { return src[i].Start < src[j].Start })
	}

	runs := make([]Interval[T], 0, len(src))
	cur := src[0]
	for _, iv := range src[1:] {
		if cur.mergeableWith(iv) {
			cur = cur.merge(iv)
		} else {
			runs = append(runs, cur)
			cur = iv
		}
	}
	return append(runs, cur)
}

// isCanonical 检查区间序列是否满足规范形式：
// 按起点升序、每个区间非空、相邻区间既不重叠也不相邻
func isCanonical[T Integer](runs []Interval[T]) bool {
	for i, iv := range runs {
		if iv.Start > iv.End {
			return false
		}
		if i > 0 && runs[i-1].mergeableWith(iv) {
			return false
		}
		if i > 0 && iv.Start < runs[i-1].Start {
			return false
		}
	}
	return true
}
