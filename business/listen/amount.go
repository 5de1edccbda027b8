package listen

import (
	"regexp"
	"strconv"
	"strings"
)

var numericAmountRe = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
var nonWordRe = regexp.MustCompile(`[^\w]`)

var wordToNum = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19, "twenty": 20,
	"thirty": 30, "forty": 40, "fifty": 50, "sixty": 60, "seventy": 70,
	"eighty": 80, "ninety": 90, "hundred": 100, "thousand": 1000,
}

// ExtractAmount pulls a payment amount out of a transcript. Digits win over
// word numbers: "received 45 rupees" gives 45, "rupees forty five" gives 45,
// "two hundred and fifty" gives 250.
func ExtractAmount(text string) (float64, bool) {
	lower := strings.ToLower(text)

	if match := numericAmountRe.FindStringSubmatch(lower); match != nil {
		amount, err := strconv.ParseFloat(match[1], 64)
		if err == nil {
			return amount, true
		}
	}

	return extractWordNumber(lower)
}

// extractWordNumber accumulates spelled-out numbers: units and tens add into
// the running group, "hundred"/"thousand" multiply it, any other word closes
// the group.
func extractWordNumber(text string) (float64, bool) {
	total := 0
	current := 0

	for _, word := range strings.Fields(text) {
		clean := nonWordRe.ReplaceAllString(word, "")
		value, ok := wordToNum[clean]

		if ok {
			if value == 100 || value == 1000 {
				if current == 0 {
					current = value
				} else {
					current *= value
				}
			} else {
				current += value
			}
		} else if current > 0 {
			total += current
			current = 0
		}
	}

	total += current
	if total > 0 {
		return float64(total), true
	}
	return 0, false
}
