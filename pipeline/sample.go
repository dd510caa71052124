package pipeline

// SampleRow is one row of the post-load sample.
// Pointer fields are nil where the warehouse returned NULL, including the
// derived numeric columns when TRY_CAST could not parse the raw text.
type SampleRow struct {
	ID          *string  `json:"id" yaml:"id"`
	Amount      *string  `json:"amount" yaml:"amount"`
	Profit      *string  `json:"profit" yaml:"profit"`
	Quantity    *string  `json:"quantity" yaml:"quantity"`
	Category    *string  `json:"category" yaml:"category"`
	SubCategory *string  `json:"subCategory" yaml:"subCategory"`
	AmountNum   *float64 `json:"amountNum" yaml:"amountNum"`
	ProfitNum   *float64 `json:"profitNum" yaml:"profitNum"`
}
