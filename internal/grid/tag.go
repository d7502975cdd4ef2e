package grid

import "strings"

// Tag is a style marker on a cell. Tags combine as a bit set.
type Tag uint8

const (
	TagBorderBottom Tag = 1 << iota // division bar / subtraction line
	TagBorderRight                  // separates divisor from dividend
	TagActive                       // the cell awaiting learner input
	TagCorrect                      // accepted quotient digit
	TagWrong                        // transient rejection flash
	TagHighlight                    // transient divisor/quotient connection pulse
	TagCarried                      // digit brought down from the dividend
)

var tagNames = []struct {
	tag  Tag
	name string
}{
	{TagBorderBottom, "border-bottom"},
	{TagBorderRight, "border-right"},
	{TagActive, "active"},
	{TagCorrect, "correct"},
	{TagWrong, "wrong"},
	{TagHighlight, "highlight"},
	{TagCarried, "carried"},
}

// Has reports whether every bit of tag is set.
func (t Tag) Has(tag Tag) bool {
	return t&tag == tag
}

// With returns t with tag added.
func (t Tag) With(tag Tag) Tag {
	return t | tag
}

// Without returns t with tag removed.
func (t Tag) Without(tag Tag) Tag {
	return t &^ tag
}

// String lists the set tags, e.g. "border-bottom|correct".
func (t Tag) String() string {
	var parts []string
	for _, tn := range tagNames {
		if t.Has(tn.tag) {
			parts = append(parts, tn.name)
		}
	}
	return strings.Join(parts, "|")
}
