package domain

// Label is the three-way sentiment class attached to a message or a whole conversation.
type Label string

const (
	Positive Label = "Positive"
	Neutral  Label = "Neutral"
	Negative Label = "Negative"
)

func (l Label) String() string {
	return string(l)
}

// Sentiment is the result of scoring one utterance.
type Sentiment struct {
	Label    Label
	Compound float64 // polarity in [-1, 1]
}

// Summary holds the fields derived once a conversation is ended.
type Summary struct {
	Overall    Label
	Trend      string
	Conclusion string
}
