package listen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAmountNumeric(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"45 rupees received", 45},
		{"received rs. 120", 120},
		{"payment of 99.50 done", 99.5},
		{"gave me 500", 500},
	}

	for _, tc := range cases {
		got, ok := ExtractAmount(tc.text)
		assert.True(t, ok, "text %q", tc.text)
		assert.Equal(t, tc.want, got, "text %q", tc.text)
	}
}

func TestExtractAmountWordNumbers(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"received rupees fifty", 50},
		{"payment of forty five rupees", 45},
		{"two hundred received", 200},
		{"two hundred and fifty", 250},
		{"one thousand", 1000},
		{"fifteen hundred", 1500},
		{"twenty, please", 20},
	}

	for _, tc := range cases {
		got, ok := ExtractAmount(tc.text)
		assert.True(t, ok, "text %q", tc.text)
		assert.Equal(t, tc.want, got, "text %q", tc.text)
	}
}

func TestExtractAmountMultiplierAppliesToGroup(t *testing.T) {
	// "hundred" and "thousand" multiply the whole running group, so without a
	// separator the five folds in before the hundred: (1*1000 + 5) * 100
	got, ok := ExtractAmount("one thousand five hundred")
	assert.True(t, ok)
	assert.Equal(t, 100500.0, got)
}

func TestExtractAmountDigitsWinOverWords(t *testing.T) {
	got, ok := ExtractAmount("fifty rupees, I mean 45")
	assert.True(t, ok)
	assert.Equal(t, 45.0, got)
}

func TestExtractAmountNotFound(t *testing.T) {
	for _, text := range []string{"", "hello there", "nothing received yet"} {
		_, ok := ExtractAmount(text)
		assert.False(t, ok, "text %q", text)
	}
}

func TestExtractAmountCaseInsensitive(t *testing.T) {
	got, ok := ExtractAmount("Received Rupees FIFTY")
	assert.True(t, ok)
	assert.Equal(t, 50.0, got)
}
