package checker

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fyerfyer/fyer-intervals/intervalset"
	"github.com/fyerfyer/fyer-intervals/set"
)

// randRunner 用随机整数批驱动intervalset的全部公开运算，
// 并将每个结果与基于map的无序集合对照实现逐一比对
type randRunner struct {
	cfg Config
	rng *rand.Rand
}

// NewRunner 创建一个差分测试执行器
func NewRunner(cfg Config) (Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return &randRunner{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// Run 执行全部试验，发现第一处不一致时提前结束
func (r *randRunner) Run(progress func(done int)) (*Report, error) {
	report := &Report{
		SessionID: uuid.New().String(),
		Seed:      r.cfg.Seed,
		Trials:    r.cfg.Trials,
	}

	start := time.Now()
	for trial := 1; trial <= r.cfg.Trials; trial++ {
		if m := r.runTrial(trial); m != nil {
			report.Mismatch = m
			break
		}
		report.Passed++
		if progress != nil {
			progress(trial)
		}
	}
	report.Elapsed = time.Since(start)

	return report, nil
}

// runTrial 执行单轮试验，返回第一处不一致，全部一致时返回nil
func (r *randRunner) runTrial(trial int) *Mismatch {
	batch1 := r.randomBatch()
	batch2 := r.randomBatch()

	ivs1 := intervalset.FromSlice(batch1)
	ivs2 := intervalset.FromSlice(batch2)
	ref1 := set.New(batch1...)
	ref2 := set.New(batch2...)

	ops := []struct {
		name string
		ivs  func() (*intervalset.IntervalSet[int], error)
		ref  func() set.Set[int]
	}{
		{"union", func() (*intervalset.IntervalSet[int], error) { return ivs1.Union(ivs2) },
			func() set.Set[int] { return ref1.Union(ref2) }},
		{"intersection", func() (*intervalset.IntervalSet[int], error) { return ivs1.Intersection(ivs2) },
			func() set.Set[int] { return ref1.Intersection(ref2) }},
		{"difference", func() (*intervalset.IntervalSet[int], error) { return ivs1.Difference(ivs2) },
			func() set.Set[int] { return ref1.Difference(ref2) }},
		{"symmetric difference", func() (*intervalset.IntervalSet[int], error) { return ivs1.SymmetricDifference(ivs2) },
			func() set.Set[int] { return ref1.SymmetricDifference(ref2) }},
	}

	for _, op := range ops {
		got, err := op.ivs()
		if err != nil {
			return r.mismatch(trial, op.name, ivs1, ivs2, "<no error>", err.Error())
		}
		want := sortedOf(op.ref())
		if !equalSlices(got.Values(), want) {
			return r.mismatch(trial, op.name, ivs1, ivs2,
				fmt.Sprint(want), fmt.Sprint(got.Values()))
		}
		if err := verifyCanonical(got); err != nil {
			return r.mismatch(trial, op.name+" canonical form", ivs1, ivs2,
				"<canonical>", err.Error())
		}
	}

	// 成员查询在取值范围两侧各多探测一段
	for probe := r.cfg.Min - 5; probe <= r.cfg.Max+5; probe++ {
		if ivs1.Contains(probe) != ref1.Contains(probe) {
			return r.mismatch(trial, "contains", ivs1, ivs2,
				fmt.Sprint(ref1.Contains(probe)), fmt.Sprint(ivs1.Contains(probe)))
		}
	}

	// 布尔谓词
	if got, want := ivs1.IsDisjoint(ivs2), ref1.IsDisjoint(ref2); got != want {
		return r.mismatch(trial, "isdisjoint", ivs1, ivs2, fmt.Sprint(want), fmt.Sprint(got))
	}
	if got, want := ivs1.IsSubset(ivs2), ref1.IsSubset(ref2); got != want {
		return r.mismatch(trial, "issubset", ivs1, ivs2, fmt.Sprint(want), fmt.Sprint(got))
	}
	if got, want := ivs1.IsSuperset(ivs2), ref1.IsSuperset(ref2); got != want {
		return r.mismatch(trial, "issuperset", ivs1, ivs2, fmt.Sprint(want), fmt.Sprint(got))
	}

	// 极值查询与对照集合的最小、最大元素比对
	if ref1.Size() > 0 {
		sorted := sortedOf(ref1)
		lo, err := ivs1.Smallest()
		if err != nil || lo != sorted[0] {
			return r.mismatch(trial, "smallest", ivs1, ivs2,
				fmt.Sprint(sorted[0]), fmt.Sprintf("%d (err=%v)", lo, err))
		}
		hi, err := ivs1.Largest()
		if err != nil || hi != sorted[len(sorted)-1] {
			return r.mismatch(trial, "largest", ivs1, ivs2,
				fmt.Sprint(sorted[len(sorted)-1]), fmt.Sprintf("%d (err=%v)", hi, err))
		}
	}

	return nil
}

// randomBatch 生成一批落在[Min, Max]内的随机整数
func (r *randRunner) randomBatch() []int {
	batch := make([]int, r.cfg.Count)
	span := r.cfg.Max - r.cfg.Min + 1
	for i := range batch {
		batch[i] = r.cfg.Min + r.rng.Intn(span)
	}
	return batch
}

func (r *randRunner) mismatch(trial int, op string, left, right fmt.Stringer, expected, got string) *Mismatch {
	return &Mismatch{
		Trial:    trial,
		Op:       op,
		Left:     left.String(),
		Right:    right.String(),
		Expected: expected,
		Got:      got,
	}
}

// verifyCanonical 检查结果的区间序列是否满足规范形式
func verifyCanonical(s *intervalset.IntervalSet[int]) error {
	runs := s.Intervals()
	for i, iv := range runs {
		if iv.Start > iv.End {
			return fmt.Errorf("run %d is empty: %v", i, iv)
		}
		if i > 0 && iv.Start <= runs[i-1].End+1 {
			return fmt.Errorf("runs %d and %d overlap or touch: %v %v", i-1, i, runs[i-1], iv)
		}
	}
	return nil
}

func sortedOf(s set.Set[int]) []int {
	out := s.ToSlice()
	sort.Ints(out)
	return out
}

func equalSlices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if v != b[i] {
			return false
		}
	}
	return true
}
