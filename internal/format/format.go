package format

import (
	"fmt"
	"strings"
	"time"
)

var bnDigits = map[rune]rune{
	'0': '০', '1': '১', '2': '২', '3': '৩', '4': '৪',
	'5': '৫', '6': '৬', '7': '৭', '8': '৮', '9': '৯',
}

// Digits converts ASCII digits in s to Bengali numerals when lang is "bn".
func Digits(s, lang string) string {
	if strings.ToLower(lang) != "bn" {
		return s
	}
	out := []rune(s)
	for i, r := range out {
		if d, ok := bnDigits[r]; ok {
			out[i] = d
		}
	}
	return string(out)
}

// Taka formats a taka amount with a thousands separator and the ৳ sign.
// Example: Taka(12500, "bn") => "৳১২,৫০০"
func Taka(amount int64, lang string) string {
	return "৳" + Digits(thousandSep(amount), lang)
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	out := ""
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(c)
	}
	if neg {
		return "-" + out
	}
	return out
}

// Date formats t in a locale-friendly short form.
func Date(t time.Time, lang string) string {
	switch strings.ToLower(lang) {
	case "bn":
		return Digits(t.Format("02-01-2006"), "bn")
	default:
		return t.Format("Jan 2, 2006")
	}
}
