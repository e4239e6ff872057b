package ui

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

var colorsEnabled = SupportsANSICodes()

// SetColor forces colour output on or off, e.g. for --no-color or piped output
func SetColor(enabled bool) {
	colorsEnabled = enabled
}

func Color() aurora.Aurora {
	return aurora.NewAurora(colorsEnabled)
}

func Bold(text string) string {
	return Color().Bold(text).String()
}

func RedText(text string) string {
	return Color().Red(text).String()
}

func GreenText(text string) string {
	return Color().Green(text).String()
}

func BlueText(text string) string {
	return Color().Blue(text).String()
}

func YellowText(text string) string {
	return Color().Yellow(text).String()
}

func GrayText(text string) string {
	return Color().Gray(12, text).String()
}

// Pair is a label and its value, rendered in order by KeyValues
type Pair struct {
	Key   string
	Value string
}

const maxKeyPadding = 50

// KeyValues renders pairs one per line with values aligned after the longest key
func KeyValues(pairs []Pair) string {
	if len(pairs) == 0 {
		return ""
	}
	longest := 0
	for _, p := range pairs {
		if len(p.Key) > longest {
			longest = len(p.Key)
		}
	}
	if longest > maxKeyPadding {
		longest = maxKeyPadding
	}

	var sb strings.Builder
	for _, p := range pairs {
		key := p.Key + ":"
		sb.WriteString(fmt.Sprintf("%-*s %s\n", longest+1, key, p.Value))
	}
	return sb.String()
}

// Truncate shortens s to at most n characters by cutting out the middle
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	const ellipsis = "..."
	if n < len(ellipsis)+2 {
		n = len(ellipsis) + 2
	}
	keep := n - len(ellipsis)
	head := (keep + 1) / 2
	tail := keep - head
	return s[:head] + ellipsis + s[len(s)-tail:]
}

// PrefixLines prepends prefix to every line of s
func PrefixLines(s string, prefix string) string {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(prefix + line + "\n")
	}
	return sb.String()
}
