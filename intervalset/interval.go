package intervalset

import (
	"fmt"
	"math"
)

// Integer 约束集合元素为Go的整数类型
// 支持有符号和无符号整数以及它们的命名类型
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Interval 表示一个闭区间[Start, End]，两端都包含在内
// 合法区间要求Start <= End，即区间至少包含一个值
type Interval[T Integer] struct {
	Start T
	End   T
}

// Contains 检查值v是否落在区间内
func (iv Interval[T]) Contains(v T) bool {
	return iv.Start <= v && v <= iv.End
}

// Count 返回区间覆盖的整数个数
// 个数超出int表示范围的超宽区间饱和为math.MaxInt
func (iv Interval[T]) Count() int {
	// 先在uint64中计算宽度，End和Start同余转换后差值不受符号影响
	width := uint64(iv.End) - uint64(iv.Start)
	if width >= uint64(math.MaxInt) {
		return math.MaxInt
	}
	return int(width) + 1
}

// String 返回区间的可读表示，单点区间只显示一个值
func (iv Interval[T]) String() string {
	if iv.Start == iv.End {
		return fmt.Sprintf("%d", iv.Start)
	}
	return fmt.Sprintf("%d-%d", iv.Start, iv.End)
}

// overlaps 检查两个区间是否有非空交集
func (iv Interval[T]) overlaps(other Interval[T]) bool {
	return iv.Start <= other.End && other.Start <= iv.End
}

// intersect 返回两个区间的交集
// 没有交集时第二个返回值为false
func (iv Interval[T]) intersect(other Interval[T]) (Interval[T], bool) {
	if !iv.overlaps(other) {
		return Interval[T]{}, false
	}
	return Interval[T]{Start: maxOf(iv.Start, other.Start), End: minOf(iv.End, other.End)}, true
}

// mergeableWith 检查next能否与当前区间合并为一个区间
// next的起点不小于当前区间起点时才有意义（即序列已按起点排序）
// 重叠或紧邻（相差1）的区间都可以合并
func (iv Interval[T]) mergeableWith(next Interval[T]) bool {
	if next.Start <= iv.End {
		return true
	}
	// 此处iv.End < next.Start <= 类型最大值，iv.End+1不会溢出
	return iv.End+1 == next.Start
}

// merge 返回两个可合并区间的并
func (iv Interval[T]) merge(other Interval[T]) Interval[T] {
	return Interval[T]{Start: minOf(iv.Start, other.Start), End: maxOf(iv.End, other.End)}
}

func minOf[T Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxOf[T Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// minValue 返回类型T能表示的最小值
func minValue[T Integer]() T {
	var zero T
	if ^zero > zero {
		// 无符号类型，最小值为0
		return zero
	}
	// 有符号类型：不断左移直到溢出为最小的负数
	m := T(1)
	for m > 0 {
		m <<= 1
	}
	return m
}

// maxValue 返回类型T能表示的最大值
func maxValue[T Integer]() T {
	var zero T
	if ^zero > zero {
		return ^zero
	}
	return ^minValue[T]()
}
