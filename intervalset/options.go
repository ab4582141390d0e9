package intervalset

// Options 定义从区间序列构造集合时的选项
type Options struct {
	// 输入序列是否已按起点升序排序
	// 已排序的输入可以跳过排序，构造过程为O(n)
	Sorted bool

	// 区间终点是否为开区间（不包含在内）
	// 单点区间（Start == End）始终视为包含该点本身
	ExclusiveEnd bool
}

// Option 函数类型用于设置构造选项
type Option func(*Options)

// DefaultOptions 返回默认的构造选项
func DefaultOptions() *Options {
	return &Options{
		Sorted:       false, // 默认需要排序
		ExclusiveEnd: false, // 默认终点包含在内
	}
}

// WithSorted 声明输入区间已按起点升序排序
func WithSorted() Option {
	return func(o *Options) {
		o.Sorted = true
	}
}

// WithExclusiveEnd 声明输入区间的终点不包含在内
func WithExclusiveEnd() Option {
	return func(o *Options) {
		o.ExclusiveEnd = true
	}
}
