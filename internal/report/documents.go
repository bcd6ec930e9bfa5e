package report

import (
	"github.com/ssj-sketch/Statuswindow/internal/model"
)

// 默认输出文件名
const (
	DefaultTransactionsFile  = "sample_card_transactions.xlsx"
	DefaultSummaryFile       = "sample_monthly_summary.xlsx"
	DefaultComprehensiveFile = "sample_comprehensive_report.xlsx"
)

// FileNames 三个输出文件的文件名
type FileNames struct {
	Transactions  string
	Summary       string
	Comprehensive string
}

// DefaultFileNames 默认文件名
func DefaultFileNames() FileNames {
	return FileNames{
		Transactions:  DefaultTransactionsFile,
		Summary:       DefaultSummaryFile,
		Comprehensive: DefaultComprehensiveFile,
	}
}

// withDefaults 未配置的文件名回退为默认值
func (n FileNames) withDefaults() FileNames {
	d := DefaultFileNames()
	if n.Transactions == "" {
		n.Transactions = d.Transactions
	}
	if n.Summary == "" {
		n.Summary = d.Summary
	}
	if n.Comprehensive == "" {
		n.Comprehensive = d.Comprehensive
	}
	return n
}

// Documents 按写入顺序返回三个输出文档：
//  1. 交易明细
//  2. 月度汇总 + 前五商户
//  3. 综合报表：月度汇总、前五商户、交易明细、付款预估
func Documents(names FileNames) []model.Document {
	names = names.withDefaults()

	transactions := TransactionSheet(BuildTransactionTable())
	summary, ranking := BuildMonthlySummary()
	summarySheet := SummarySheet(summary)
	merchantSheet := MerchantSheet(ranking)
	forecastSheet := ForecastSheet(BuildForecast())

	return []model.Document{
		{
			FileName: names.Transactions,
			Sheets:   []model.Sheet{transactions},
		},
		{
			FileName: names.Summary,
			Sheets:   []model.Sheet{summarySheet, merchantSheet},
		},
		{
			FileName: names.Comprehensive,
			Sheets:   []model.Sheet{summarySheet, merchantSheet, transactions, forecastSheet},
		},
	}
}
