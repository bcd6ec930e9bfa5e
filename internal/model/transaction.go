package model

// TransactionRecord 单笔刷卡交易（样例固定值）
type TransactionRecord struct {
	Date             string `json:"date"` // yyyy-MM-dd
	Time             string `json:"time"` // HH:mm
	CardIssuer       string `json:"cardIssuer"`
	CardNumber       string `json:"cardNumber"` // 末四位
	TransactionType  string `json:"transactionType"`
	Payer            string `json:"payer"`
	Amount           int64  `json:"amount"`
	Installment      string `json:"installment"`
	Merchant         string `json:"merchant"`
	CumulativeAmount int64  `json:"cumulativeAmount"` // 按列表顺序的前缀和
	Category         string `json:"category"`
	Memo             string `json:"memo"`
}

// SummaryEntry 标签/值 对（月度汇总、预估表共用）
//
// Value 仅允许 int / int64 / float64（金额）/ string（百分比文本）。
type SummaryEntry struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

// MerchantRanking 商户消费排名
type MerchantRanking struct {
	Merchant   string  `json:"merchant"`
	Amount     int64   `json:"amount"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"` // 占总消费比例，保留两位小数
}
