package vhdl

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	rangeIntRegexp  = regexp.MustCompile(`\d+`)
	rangeWordRegexp = regexp.MustCompile(`[A-Za-z_]\w*`)
)

// Range holds the numeric bounds of a port range.
type Range struct {
	High int
	Low  int
	// Descending is true for "downto" ranges.
	Descending bool
}

// TotalBits returns the number of bits spanned by the range, regardless of
// its direction.
func (r Range) TotalBits() int {
	n := r.High - r.Low
	if n < 0 {
		n = -n
	}
	return n + 1
}

// ParseRange extracts the two integer bounds embedded in range text such as
// "7 downto 0" or "0 to 15". The first integer is reported as High and the
// second as Low. Symbolic bounds ("WIDTH-1 downto 0") are rejected because
// their integers do not describe the width.
func ParseRange(text string) (Range, error) {
	nums := rangeIntRegexp.FindAllString(text, -1)
	if len(nums) != 2 {
		return Range{}, &RangeFormatError{Text: text, Count: len(nums)}
	}

	descending := true
	for _, word := range rangeWordRegexp.FindAllString(text, -1) {
		switch strings.ToLower(word) {
		case "downto":
		case "to":
			descending = false
		default:
			return Range{}, &RangeFormatError{
				Text:   text,
				Count:  len(nums),
				Reason: "symbolic bound " + word + " cannot be resolved",
			}
		}
	}

	high, err := strconv.Atoi(nums[0])
	if err != nil {
		return Range{}, &RangeFormatError{Text: text, Count: len(nums), Reason: err.Error()}
	}
	low, err := strconv.Atoi(nums[1])
	if err != nil {
		return Range{}, &RangeFormatError{Text: text, Count: len(nums), Reason: err.Error()}
	}

	return Range{High: high, Low: low, Descending: descending}, nil
}
