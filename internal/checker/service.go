package checker

import (
	"errors"
	"time"
)

var (
	// ErrInvalidConfig 表示差分测试配置不合法
	ErrInvalidConfig = errors.New("invalid checker config")
)

// Config 定义一次差分测试会话的参数
type Config struct {
	// 试验轮数
	Trials int
	// 每批随机整数的数量
	Count int
	// 随机整数的取值下界（包含）
	Min int
	// 随机整数的取值上界（包含）
	Max int
	// 随机种子，0表示使用当前时间派生
	Seed int64
}

// Validate 检查配置是否合法
func (c Config) Validate() error {
	if c.Trials <= 0 || c.Count <= 0 || c.Min > c.Max {
		return ErrInvalidConfig
	}
	return nil
}

// Mismatch 记录区间集合与对照集合结果不一致的现场
type Mismatch struct {
	// 出现不一致的试验轮次（从1开始）
	Trial int
	// 出现不一致的运算名称
	Op string
	// 左操作数的区间表示
	Left string
	// 右操作数的区间表示
	Right string
	// 对照集合给出的期望结果
	Expected string
	// 区间集合给出的实际结果
	Got string
}

// Report 汇总一次差分测试会话的结果
type Report struct {
	// 会话唯一标识
	SessionID string
	// 实际使用的随机种子，复现问题时传回Config即可
	Seed int64
	// 配置的试验轮数
	Trials int
	// 通过的试验轮数
	Passed int
	// 会话耗时
	Elapsed time.Duration
	// 第一处不一致，全部通过时为nil
	Mismatch *Mismatch
}

// OK 返回会话是否全部通过
func (r *Report) OK() bool {
	return r.Mismatch == nil
}

// Runner 定义差分测试执行器接口
type Runner interface {
	// Run 执行全部试验
	// progress不为nil时在每轮结束后被调用，参数为已完成的轮数
	// 发现不一致时提前结束，结果记录在Report中
	Run(progress func(done int)) (*Report, error)
}
