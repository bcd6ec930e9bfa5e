package report

import (
	"github.com/ssj-sketch/Statuswindow/internal/model"
)

const (
	sampleCardIssuer  = "신한카드"
	sampleCardNumber  = "1234"
	sampleTxType      = "승인"
	samplePayer       = "본인"
	sampleInstallment = "일시불"
)

type sampleTx struct {
	date, clock string
	amount      int64
	merchant    string
	category    string
}

// 2024-01-15 → 2024-01-11，日内按列出顺序
var sampleTransactions = []sampleTx{
	{"2024-01-15", "14:30", 12700, "스타벅스 강남점", "카페"},
	{"2024-01-15", "12:15", 45000, "이마트 과천점", "마트"},
	{"2024-01-14", "19:45", 25000, "맥도날드 홍대점", "식당"},
	{"2024-01-14", "16:20", 15000, "GS25 강남역점", "편의점"},
	{"2024-01-13", "20:30", 80000, "롯데마트 잠실점", "마트"},
	{"2024-01-13", "11:00", 12000, "투썸플레이스 신촌점", "카페"},
	{"2024-01-12", "18:15", 35000, "교보문고 강남점", "서점"},
	{"2024-01-12", "14:00", 22000, "올리브영 명동점", "화장품"},
	{"2024-01-11", "21:00", 18000, "배달의민족", "배달"},
	{"2024-01-11", "13:30", 9500, "CU 신촌점", "편의점"},
}

// BuildTransactionTable 返回固定的 10 条样例交易
//
// CumulativeAmount 为按列表顺序累加的前缀和。
func BuildTransactionTable() []model.TransactionRecord {
	records := make([]model.TransactionRecord, 0, len(sampleTransactions))
	var cumulative int64
	for _, tx := range sampleTransactions {
		cumulative += tx.amount
		records = append(records, model.TransactionRecord{
			Date:             tx.date,
			Time:             tx.clock,
			CardIssuer:       sampleCardIssuer,
			CardNumber:       sampleCardNumber,
			TransactionType:  sampleTxType,
			Payer:            samplePayer,
			Amount:           tx.amount,
			Installment:      sampleInstallment,
			Merchant:         tx.merchant,
			CumulativeAmount: cumulative,
			Category:         tx.category,
			Memo:             "",
		})
	}
	return records
}

// 月度汇总标签
const (
	LabelYear         = "년도"
	LabelMonth        = "월"
	LabelTotalAmount  = "총 사용액"
	LabelTxCount      = "거래 건수"
	LabelAverageSpend = "평균 거래액"
)

// 预估表标签
const (
	LabelCurrentMonthTotal   = "현재 월 사용액"
	LabelEstimatedTotal      = "예상 월 총액"
	LabelDaysRemaining       = "남은 일수"
	LabelDailyAverage        = "일평균 소비액"
	LabelProjectedAdditional = "예상 추가 소비액"
	LabelConfidence          = "신뢰도"
)

// BuildMonthlySummary 返回固定的月度汇总与前五商户排名
func BuildMonthlySummary() ([]model.SummaryEntry, []model.MerchantRanking) {
	summary := []model.SummaryEntry{
		{Label: LabelYear, Value: 2024},
		{Label: LabelMonth, Value: 1},
		{Label: LabelTotalAmount, Value: int64(274200)},
		{Label: LabelTxCount, Value: 10},
		{Label: LabelAverageSpend, Value: 27420.00},
	}

	ranking := []model.MerchantRanking{
		{Merchant: "롯데마트 잠실점", Amount: 80000, Count: 1, Percentage: 29.18},
		{Merchant: "이마트 과천점", Amount: 45000, Count: 1, Percentage: 16.41},
		{Merchant: "교보문고 강남점", Amount: 35000, Count: 1, Percentage: 12.76},
		{Merchant: "맥도날드 홍대점", Amount: 25000, Count: 1, Percentage: 9.12},
		{Merchant: "올리브영 명동점", Amount: 22000, Count: 1, Percentage: 8.02},
	}

	return summary, ranking
}

// BuildForecast 返回固定的本月付款预估
//
// 这些数字是样例常量，与交易数据之间并不完全自洽，见 CheckForecast。
func BuildForecast() []model.SummaryEntry {
	return []model.SummaryEntry{
		{Label: LabelCurrentMonthTotal, Value: int64(274200)},
		{Label: LabelEstimatedTotal, Value: int64(350000)},
		{Label: LabelDaysRemaining, Value: 16},
		{Label: LabelDailyAverage, Value: 27420.00},
		{Label: LabelProjectedAdditional, Value: int64(75800)},
		{Label: LabelConfidence, Value: "85.00%"},
	}
}
