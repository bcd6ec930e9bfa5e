package report

import (
	"errors"
	"fmt"
	"math"

	"github.com/ssj-sketch/Statuswindow/internal/model"
)

// ErrInconsistentData 固定样例数据不满足不变量
var ErrInconsistentData = errors.New("sample data inconsistent")

// CheckTransactions 校验累计金额为金额的前缀和
func CheckTransactions(records []model.TransactionRecord) error {
	var sum int64
	for i, r := range records {
		sum += r.Amount
		if r.CumulativeAmount != sum {
			return fmt.Errorf("%w: 第 %d 行累计金额=%d，期望 %d", ErrInconsistentData, i+1, r.CumulativeAmount, sum)
		}
	}
	return nil
}

// CheckRanking 校验商户占比 = round2(消费额/总消费*100)，且排名商户消费合计不超过总消费
func CheckRanking(total int64, ranking []model.MerchantRanking) error {
	if total <= 0 {
		return fmt.Errorf("%w: 总消费额必须为正数，实际 %d", ErrInconsistentData, total)
	}

	var ranked int64
	for i, m := range ranking {
		ranked += m.Amount
		want := SharePercent(m.Amount, total)
		if math.Abs(m.Percentage-want) > 1e-9 {
			return fmt.Errorf("%w: 第 %d 名 %s 占比=%.2f，期望 %.2f", ErrInconsistentData, i+1, m.Merchant, m.Percentage, want)
		}
	}
	if ranked > total {
		return fmt.Errorf("%w: 排名商户消费合计 %d 超过总消费 %d", ErrInconsistentData, ranked, total)
	}
	return nil
}

// SharePercent amount 占 total 的百分比，保留两位小数
func SharePercent(amount, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(amount)/float64(total)*100*100) / 100
}

// CheckForecast 检查预估表内部及与月度汇总之间的一致性，返回警告（不阻断导出）
func CheckForecast(summary, forecast []model.SummaryEntry) []string {
	var warnings []string

	total, okTotal := NumberValue(summary, LabelTotalAmount)
	current, okCurrent := NumberValue(forecast, LabelCurrentMonthTotal)
	estimated, okEstimated := NumberValue(forecast, LabelEstimatedTotal)
	days, okDays := NumberValue(forecast, LabelDaysRemaining)
	daily, okDaily := NumberValue(forecast, LabelDailyAverage)
	additional, okAdditional := NumberValue(forecast, LabelProjectedAdditional)

	if okTotal && okCurrent && total != current {
		warnings = append(warnings, fmt.Sprintf("%s(%.0f) 与 %s(%.0f) 不一致", LabelCurrentMonthTotal, current, LabelTotalAmount, total))
	}
	if okCurrent && okEstimated && okAdditional && current+additional != estimated {
		warnings = append(warnings, fmt.Sprintf("%s(%.0f) ≠ %s(%.0f) + %s(%.0f)",
			LabelEstimatedTotal, estimated, LabelCurrentMonthTotal, current, LabelProjectedAdditional, additional))
	}
	if okDays && okDaily && okAdditional && math.Abs(days*daily-additional) >= 1 {
		warnings = append(warnings, fmt.Sprintf("%s(%.0f) ≠ %s(%.0f) × %s(%.2f)",
			LabelProjectedAdditional, additional, LabelDaysRemaining, days, LabelDailyAverage, daily))
	}

	return warnings
}

// NumberValue 按标签取数值型条目；字符串或缺失返回 false
func NumberValue(entries []model.SummaryEntry, label string) (float64, bool) {
	for _, e := range entries {
		if e.Label != label {
			continue
		}
		switch v := e.Value.(type) {
		case int:
			return float64(v), true
		case int64:
			return float64(v), true
		case float64:
			return v, true
		default:
			return 0, false
		}
	}
	return 0, false
}

// Check 对全部样例数据执行不变量校验，返回预估表警告
func Check() ([]string, error) {
	if err := CheckTransactions(BuildTransactionTable()); err != nil {
		return nil, err
	}

	summary, ranking := BuildMonthlySummary()
	total, ok := NumberValue(summary, LabelTotalAmount)
	if !ok {
		return nil, fmt.Errorf("%w: 月度汇总缺少 %s", ErrInconsistentData, LabelTotalAmount)
	}
	if err := CheckRanking(int64(total), ranking); err != nil {
		return nil, err
	}

	return CheckForecast(summary, BuildForecast()), nil
}
