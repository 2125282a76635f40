package ai

// Pricing converts token usage into a cost, in USD per 1K tokens
type Pricing struct {
	InputPer1K  float64
	OutputPer1K float64
}

// Cost returns the price of a single call
func (p Pricing) Cost(u Usage) float64 {
	return float64(u.PromptTokens)/1000*p.InputPer1K + float64(u.CompletionTokens)/1000*p.OutputPer1K
}
