package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/kyo-hirano/receipt-fields/internal/entity"
)

// datePattern is one entry of the ordered date match policy. Submatch
// order is uniform across patterns: era (may be empty), year, month,
// day — patterns without an era or year carry empty groups so the
// policy table stays position-stable and testable.
type datePattern struct {
	re         *regexp.Regexp
	hasMarkers bool // explicit 年/月/日 unit markers
	isEra      bool
	monthDay   bool // no year group; the reference year applies
}

const eraAlt = `令和|平成|昭和|大正|令|平|昭|大|R|H|S|T`

var datePatterns = []datePattern{
	// 令和5年12月15日
	{re: regexp.MustCompile(`(` + eraAlt + `)\s*(\d{1,2})\s*年\s*(\d{1,2})\s*月\s*(\d{1,2})\s*日`), hasMarkers: true, isEra: true},
	// R5.12.15, 令和5/12/15
	{re: regexp.MustCompile(`(` + eraAlt + `)\s*(\d{1,2})[./](\d{1,2})[./](\d{1,2})`), isEra: true},
	// 2023年12月15日, 23年12月15日
	{re: regexp.MustCompile(`()(\d{4}|\d{2})\s*年\s*(\d{1,2})\s*月\s*(\d{1,2})\s*日`), hasMarkers: true},
	// 2023/12/15, 2023-12-15, 2023.12.15
	{re: regexp.MustCompile(`()(\d{4})[/\-.](\d{1,2})[/\-.](\d{1,2})`)},
	// 23/12/15
	{re: regexp.MustCompile(`\b()(\d{2})[/\-.](\d{1,2})[/\-.](\d{1,2})\b`)},
	// 12月15日
	{re: regexp.MustCompile(`()()(\d{1,2})\s*月\s*(\d{1,2})\s*日`), hasMarkers: true, monthDay: true},
	// 12/15
	{re: regexp.MustCompile(`\b()()(\d{1,2})/(\d{1,2})\b`), monthDay: true},
}

// DateMatch carries the capture groups of one date-like match.
type DateMatch struct {
	Era     string // era name or abbreviation; empty for Western years
	Year    string // empty for month/day-only matches
	Month   string
	Day     string
	Markers bool // the match contained explicit 年/月/日 unit markers
}

// NormalizeDate converts one matched date into canonical YYYY/MM/DD
// form with a confidence score. refYear is the year assumed for
// month/day-only matches. A match that fails era bounds or the strict
// calendar check yields ok=false, never a clamped approximation.
func (e *Extractor) NormalizeDate(m DateMatch, refYear int) (value string, confidence float64, ok bool) {
	confidence = 0.5
	if m.Markers {
		confidence += 0.3
	}

	var year int
	switch {
	case m.Era != "":
		era, found := e.eraByAlias[m.Era]
		if !found {
			return "", 0, false
		}
		eraYear, err := strconv.Atoi(m.Year)
		// era year 0 never exists, and years past the era's end belong
		// to the next era
		if err != nil || eraYear < 1 || eraYear > era.MaxYear {
			return "", 0, false
		}
		year = era.Start + eraYear - 1
		confidence += 0.2
	case m.Year == "":
		year = refYear
	default:
		y, err := strconv.Atoi(m.Year)
		if err != nil {
			return "", 0, false
		}
		if len(m.Year) == 2 {
			if y < 50 {
				y += 2000
			} else {
				y += 1900
			}
		}
		year = y
	}

	month, err := strconv.Atoi(m.Month)
	if err != nil {
		return "", 0, false
	}
	day, err := strconv.Atoi(m.Day)
	if err != nil {
		return "", 0, false
	}
	if !isValidDate(year, month, day) {
		return "", 0, false
	}
	if confidence > 1.0 {
		confidence = 1.0
	}
	return fmt.Sprintf("%04d/%02d/%02d", year, month, day), confidence, true
}

func (e *Extractor) extractDates(blocks []entity.TextBlock) []entity.Candidate {
	now := time.Now().UTC()
	var out []entity.Candidate
	for _, b := range blocks {
		text := normalizeText(b.Text)
		for _, p := range datePatterns {
			groups := p.re.FindStringSubmatch(text)
			if groups == nil {
				continue
			}
			m := DateMatch{
				Era:     groups[1],
				Year:    groups[2],
				Month:   groups[3],
				Day:     groups[4],
				Markers: p.hasMarkers,
			}
			value, conf, ok := e.NormalizeDate(m, e.cfg.ReferenceYear)
			if !ok {
				// invalid calendar value: discard, no fallback to a
				// weaker pattern
				break
			}
			if b.BoundingBox != nil {
				if _, cy := b.BoundingBox.Center(); cy < e.cfg.HeaderBand {
					conf += 0.1
				}
			}
			if conf > 1.0 {
				conf = 1.0
			}
			out = append(out, entity.Candidate{
				Value:        value,
				Confidence:   conf,
				OriginalText: rawSpan(b.Text, groups[0]),
				Source:       blockSource(b),
				Timestamp:    now,
			})
			break
		}
	}
	return out
}

// looksLikeDate reports whether s matches any entry of the date
// pattern table. Used by the payee and purpose extractors to exclude
// date lines.
func looksLikeDate(s string) bool {
	for _, p := range datePatterns {
		if p.re.MatchString(s) {
			return true
		}
	}
	return false
}

// isValidDate is a strict calendar check: month 1-12, day within the
// actual days of that month (leap-year aware), year within 1900-2100.
func isValidDate(year, month, day int) bool {
	if year < 1900 || year > 2100 || month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= daysInMonth(year, month)
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	default:
		if isLeapYear(year) {
			return 29
		}
		return 28
	}
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
