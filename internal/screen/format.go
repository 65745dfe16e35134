package screen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// FormatINR renders a rupee amount: crores from 1e7, lakhs from 1e5,
// otherwise Indian digit grouping.
func FormatINR(amount int64) string {
	switch {
	case amount >= 10_000_000:
		return fmt.Sprintf("₹%.1f Cr", float64(amount)/10_000_000)
	case amount >= 100_000:
		return fmt.Sprintf("₹%.1f L", float64(amount)/100_000)
	}

	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return "₹" + sign + groupIndian(strconv.FormatInt(amount, 10))
}

// groupIndian inserts separators after the last three digits and then every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	return strings.Join(parts, ",") + "," + tail
}

// LevelText names a 0..100 proficiency level.
func LevelText(level int) string {
	switch {
	case level >= 90:
		return "Expert"
	case level >= 70:
		return "Advanced"
	case level >= 50:
		return "Intermediate"
	case level >= 30:
		return "Beginner"
	default:
		return "Novice"
	}
}

// Band classifies a level or progress value for colouring.
func Band(level int) string {
	switch {
	case level >= 80:
		return "high"
	case level >= 60:
		return "medium"
	default:
		return "low"
	}
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func percent(part, whole int64) int {
	if whole <= 0 {
		return 0
	}
	return int((part*100 + whole/2) / whole)
}

func roundedMean(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return int(float64(sum)/float64(len(values)) + 0.5)
}

func filterDisabled(v string) bool {
	return v == "" || strings.EqualFold(v, "all")
}
