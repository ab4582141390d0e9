package checker

import (
	"fmt"
	"strings"
	"time"
)

// FormatReport 返回会话结果的格式化字符串表示
func FormatReport(r *Report) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Session: %s\n", r.SessionID))
	sb.WriteString(fmt.Sprintf("Seed: %d\n", r.Seed))
	sb.WriteString(fmt.Sprintf("Trials: %d/%d passed\n", r.Passed, r.Trials))
	sb.WriteString(fmt.Sprintf("Elapsed: %s\n", r.Elapsed.Round(elapsedPrecision(r))))

	if r.OK() {
		sb.WriteString("Result: OK\n")
	} else {
		sb.WriteString("Result: MISMATCH\n")
		sb.WriteString(FormatMismatch(r.Mismatch))
	}

	return sb.String()
}

// FormatMismatch 返回不一致现场的格式化字符串表示
func FormatMismatch(m *Mismatch) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Trial %d failed on %s:\n", m.Trial, m.Op))
	sb.WriteString(fmt.Sprintf("  left:     %s\n", emptyAs(m.Left, "<empty>")))
	sb.WriteString(fmt.Sprintf("  right:    %s\n", emptyAs(m.Right, "<empty>")))
	sb.WriteString(fmt.Sprintf("  expected: %s\n", m.Expected))
	sb.WriteString(fmt.Sprintf("  got:      %s\n", m.Got))

	return sb.String()
}

func emptyAs(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}

// elapsedPrecision 根据耗时量级选择展示精度
func elapsedPrecision(r *Report) time.Duration {
	if r.Elapsed >= time.Second {
		return 10 * time.Millisecond
	}
	return time.Microsecond
}
