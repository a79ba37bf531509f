package model

import "fmt"

// Label is a 3-way sentiment polarity bucket derived from a 1-5 star rating.
type Label int

const (
	Negative Label = iota
	Neutral
	Positive
)

// Labels returns all sentiment labels in display order.
func Labels() []Label {
	return []Label{Negative, Neutral, Positive}
}

func (l Label) String() string {
	switch l {
	case Negative:
		return "NEG"
	case Neutral:
		return "NEU"
	case Positive:
		return "POS"
	}
	return fmt.Sprintf("Label(%d)", int(l))
}
