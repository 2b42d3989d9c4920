package sentiment

// Label classifies a polarity score
type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// labelThreshold separates neutral text from opinionated text
const labelThreshold = 0.1

// LabelFor maps polarity to a label: above 0.1 is positive, below -0.1 negative
func LabelFor(polarity float64) Label {
	switch {
	case polarity > labelThreshold:
		return Positive
	case polarity < -labelThreshold:
		return Negative
	default:
		return Neutral
	}
}

// Message is the sentence shown to users for the label
func (l Label) Message() string {
	switch l {
	case Positive:
		return "Positive sentiment detected"
	case Negative:
		return "Negative sentiment detected"
	default:
		return "Neutral sentiment detected"
	}
}
