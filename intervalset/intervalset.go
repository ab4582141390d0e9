package intervalset

import (
	"encoding/binary"
	"hash/maphash"
	"math"
	"strings"
)

// IntervalSet 用按起点升序、互不重叠且互不相邻的闭区间序列紧凑地表示一个有限整数集合
// 内存占用与区间个数成正比，而不是与元素个数成正比，
// 适合包含大量连续整数段的集合
//
// IntervalSet是不可变值：构造完成后所有运算都返回新的集合，
// 因此多个goroutine可以不加锁地共享同一个集合
type IntervalSet[T Integer] struct {
	runs []Interval[T]
}

// New 从任意整数序列创建集合
// 输入顺序任意、允许重复，时间复杂度O(n log n)
// 空输入产生空集合
func New[T Integer](values ...T) *IntervalSet[T] {
	return &IntervalSet[T]{runs: runsFromValues(values)}
}

// FromSlice 从现有整数切片创建集合，输入切片不会被修改
func FromSlice[T Integer](values []T) *IntervalSet[T] {
	return &IntervalSet[T]{runs: runsFromValues(values)}
}

// Single 创建只包含一个值的集合
func Single[T Integer](v T) *IntervalSet[T] {
	return &IntervalSet[T]{runs: []Interval[T]{{Start: v, End: v}}}
}

// FromIntervals 从区间序列创建集合
// 输入区间允许重叠或紧邻，构造时会归并为规范形式
// 使用WithSorted可以跳过排序，使用WithExclusiveEnd声明终点为开区间
// 出现起点大于终点的区间时返回ErrInvalidInterval
func FromIntervals[T Integer](ivs []Interval[T], opts ...Option) (*IntervalSet[T], error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	src := make([]Interval[T], 0, len(ivs))
	for _, iv := range ivs {
		if options.ExclusiveEnd && iv.Start != iv.End {
			// 开区间终点前移一位，单点区间保持原样
			iv.End--
		}
		if iv.Start > iv.End {
			return nil, ErrInvalidInterval
		}
		src = append(src, iv)
	}

	return &IntervalSet[T]{runs: normalizeRuns(src, options.Sorted)}, nil
}

// newFromRuns 从已经满足规范形式的区间序列直接创建集合
// 调用方必须保证runs规范且不再被外部引用
func newFromRuns[T Integer](runs []Interval[T]) *IntervalSet[T] {
	if len(runs) == 0 {
		runs = nil
	}
	return &IntervalSet[T]{runs: runs}
}

// Copy 返回集合的副本，副本拥有独立的区间存储
func (s *IntervalSet[T]) Copy() *IntervalSet[T] {
	if len(s.runs) == 0 {
		return &IntervalSet[T]{}
	}
	runs := make([]Interval[T], len(s.runs))
	copy(runs, s.runs)
	return &IntervalSet[T]{runs: runs}
}

// IsEmpty 检查集合是否为空
func (s *IntervalSet[T]) IsEmpty() bool {
	return len(s.runs) == 0
}

// Len 返回集合包含的元素个数
// 元素个数超出int表示范围时饱和为math.MaxInt
func (s *IntervalSet[T]) Len() int {
	total := 0
	for _, iv := range s.runs {
		c := iv.Count()
		if total > math.MaxInt-c {
			return math.MaxInt
		}
		total += c
	}
	return total
}

// Runs 返回集合包含的区间个数
func (s *IntervalSet[T]) Runs() int {
	return len(s.runs)
}

// Intervals 返回规范区间序列的副本
func (s *IntervalSet[T]) Intervals() []Interval[T] {
	if len(s.runs) == 0 {
		return nil
	}
	runs := make([]Interval[T], len(s.runs))
	copy(runs, s.runs)
	return runs
}

// Smallest 返回集合中最小的元素
// 集合为空时返回ErrEmptySet
func (s *IntervalSet[T]) Smallest() (T, error) {
	if len(s.runs) == 0 {
		var zero T
		return zero, ErrEmptySet
	}
	return s.runs[0].Start, nil
}

// Largest 返回集合中最大的元素
// 集合为空时返回ErrEmptySet
func (s *IntervalSet[T]) Largest() (T, error) {
	if len(s.runs) == 0 {
		var zero T
		return zero, ErrEmptySet
	}
	return s.runs[len(s.runs)-1].End, nil
}

// Equal 检查两个集合是否包含完全相同的元素
// 规范形式唯一，因此只需逐一比较区间序列
// nil被视为空集合
func (s *IntervalSet[T]) Equal(other *IntervalSet[T]) bool {
	if other == nil {
		return len(s.runs) == 0
	}
	if len(s.runs) != len(other.runs) {
		return false
	}
	for i, iv := range s.runs {
		if iv != other.runs[i] {
			return false
		}
	}
	return true
}

// Feather 返回每个区间向两侧各扩展amount后的新集合
// 扩展后互相接触的区间会被归并；超出元素类型表示范围的部分饱和到类型边界
// amount为负时返回ErrInvalidInterval
func (s *IntervalSet[T]) Feather(amount T) (*IntervalSet[T], error) {
	var zero T
	if amount < zero {
		return nil, ErrInvalidInterval
	}
	if len(s.runs) == 0 || amount == zero {
		return s.Copy(), nil
	}

	padded := make([]Interval[T], 0, len(s.runs))
	for _, iv := range s.runs {
		lo := iv.Start - amount
		if lo > iv.Start {
			// 下溢，饱和到最小值
			lo = minValue[T]()
		}
		hi := iv.End + amount
		if hi < iv.End {
			hi = maxValue[T]()
		}
		padded = append(padded, Interval[T]{Start: lo, End: hi})
	}
	return newFromRuns(normalizeRuns(padded, true)), nil
}

// Hash 返回集合的摘要值，元素相同的集合摘要值相同
// 摘要基于规范区间序列计算，仅在同一进程内稳定
func (s *IntervalSet[T]) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	var buf [16]byte
	for _, iv := range s.runs {
		binary.LittleEndian.PutUint64(buf[:8], uint64(iv.Start))
		binary.LittleEndian.PutUint64(buf[8:], uint64(iv.End))
		h.Write(buf[:])
	}
	return h.Sum64()
}

var hashSeed = maphash.MakeSeed()

// String 返回集合的可读表示，例如"0-3,7,9-12"
// 空集合返回空字符串；该格式用于诊断输出，可通过Parse还原
func (s *IntervalSet[T]) String() string {
	if len(s.runs) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, iv := range s.runs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(iv.String())
	}
	return sb.String()
}
