package intervalset

import "errors"

var (
	// ErrEmptySet 表示对空集合执行了需要至少一个元素的查询
	ErrEmptySet = errors.New("interval set is empty")

	// ErrNilSet 表示二元运算的另一个操作数为nil
	ErrNilSet = errors.New("operand interval set is nil")

	// ErrInvalidInterval 表示输入的区间不合法（起点大于终点）
	ErrInvalidInterval = errors.New("invalid interval: start is greater than end")

	// ErrParse 表示区间文本无法解析
	ErrParse = errors.New("malformed interval text")
)
