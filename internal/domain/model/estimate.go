package model

// Estimate is the mock analysis result for an uploaded model file.
type Estimate struct {
	WeightGrams float64 `json:"weight"`
	PrintTime   string  `json:"printTime"`
	BaseCost    float64 `json:"baseCost"`
}
