package report

import (
	"github.com/ssj-sketch/Statuswindow/internal/model"
)

// 工作表名称
const (
	SheetTransactions   = "거래내역"
	SheetMonthlySummary = "월별요약"
	SheetTopMerchants   = "상위가맹점"
	SheetForecast       = "결제예상액"
)

var transactionHeader = []string{
	"날짜", "시간", "카드사", "카드번호", "거래유형", "사용자",
	"금액", "할부", "가맹점", "누적금액", "카테고리", "메모",
}

var summaryHeader = []string{"항목", "값"}

var merchantHeader = []string{"가맹점명", "사용액", "거래건수", "비율(%)"}

// TransactionSheet 交易明细表（12 列）
func TransactionSheet(records []model.TransactionRecord) model.Sheet {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{
			r.Date, r.Time, r.CardIssuer, r.CardNumber, r.TransactionType, r.Payer,
			r.Amount, r.Installment, r.Merchant, r.CumulativeAmount, r.Category, r.Memo,
		})
	}
	return model.Sheet{
		Name:   SheetTransactions,
		Header: cloneHeader(transactionHeader),
		Rows:   rows,
	}
}

// SummarySheet 月度汇总表（项目/值）
func SummarySheet(entries []model.SummaryEntry) model.Sheet {
	return entrySheet(SheetMonthlySummary, entries)
}

// ForecastSheet 付款预估表（项目/值）
func ForecastSheet(entries []model.SummaryEntry) model.Sheet {
	return entrySheet(SheetForecast, entries)
}

// MerchantSheet 前五商户表
func MerchantSheet(ranking []model.MerchantRanking) model.Sheet {
	rows := make([][]any, 0, len(ranking))
	for _, m := range ranking {
		rows = append(rows, []any{m.Merchant, m.Amount, m.Count, m.Percentage})
	}
	return model.Sheet{
		Name:   SheetTopMerchants,
		Header: cloneHeader(merchantHeader),
		Rows:   rows,
	}
}

func entrySheet(name string, entries []model.SummaryEntry) model.Sheet {
	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []any{e.Label, e.Value})
	}
	return model.Sheet{
		Name:   name,
		Header: cloneHeader(summaryHeader),
		Rows:   rows,
	}
}

func cloneHeader(h []string) []string {
	out := make([]string, len(h))
	copy(out, h)
	return out
}
