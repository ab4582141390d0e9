package intervalset

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse 解析String产生的区间文本，例如"0-3,7,9-12"
// 空字符串解析为空集合；允许区间乱序、重叠，解析结果总是规范形式
// 文本不合法时返回ErrParse
func Parse[T Integer](text string) (*IntervalSet[T], error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return &IntervalSet[T]{}, nil
	}

	ivs := make([]Interval[T], 0)
	for _, tok := range strings.Split(text, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, fmt.Errorf("%w: empty token", ErrParse)
		}

		lo, hi, err := splitRangeToken(tok)
		if err != nil {
			return nil, err
		}
		if lo > hi {
			return nil, fmt.Errorf("%w: descending range %q", ErrParse, tok)
		}
		start, err := toElem[T](lo, tok)
		if err != nil {
			return nil, err
		}
		end, err := toElem[T](hi, tok)
		if err != nil {
			return nil, err
		}
		ivs = append(ivs, Interval[T]{Start: start, End: end})
	}

	return FromIntervals(ivs)
}

// toElem 将解析出的值转换为元素类型T
// 值超出T的表示范围时返回ErrParse，而不是静默截断
func toElem[T Integer](v int64, tok string) (T, error) {
	var zero T
	if v < 0 && ^zero > zero {
		// 无符号类型不接受负数
		return zero, fmt.Errorf("%w: %q out of range", ErrParse, tok)
	}
	t := T(v)
	// v非负或T有符号时，能原样转换回来说明没有丢失信息
	if int64(t) != v {
		return zero, fmt.Errorf("%w: %q out of range", ErrParse, tok)
	}
	return t, nil
}

// splitRangeToken 解析单个区间记号，"7"或"2-5"
// 负数使用前导负号，例如"-5--2"表示从-5到-2
func splitRangeToken(tok string) (int64, int64, error) {
	// 分隔符是第一个前面紧跟数字的'-'，跳过首字符以支持负号
	sep := -1
	for i := 1; i < len(tok); i++ {
		if tok[i] == '-' && tok[i-1] >= '0' && tok[i-1] <= '9' {
			sep = i
			break
		}
	}

	if sep < 0 {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", ErrParse, tok)
		}
		return v, v, nil
	}

	lo, err := strconv.ParseInt(tok[:sep], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrParse, tok)
	}
	hi, err := strconv.ParseInt(tok[sep+1:], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrParse, tok)
	}
	return lo, hi, nil
}
