package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"full width digits and separators", "１，６５０円", "1,650円"},
		{"full width yen sign", "￥５００", "¥500"},
		{"ideographic space", "合計　¥1,650", "合計 ¥1,650"},
		{"crlf and runs of spaces", "合計  ¥100\r\n", "合計 ¥100"},
		{"half width katakana widened", "ｺｰﾋｰ", "コーヒー"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeText(tt.in))
		})
	}
}

func TestRawSpan(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		matched string
		want    string
	}{
		{"identity", "¥1,650", "¥1,650", "¥1,650"},
		{"substring", "合計 ¥1,650", "¥1,650", "¥1,650"},
		{"full width span", "合計　１，６５０円", "1,650円", "１，６５０円"},
		{"half width katakana span", "ｺｰﾋｰ 2点", "コーヒー", "ｺｰﾋｰ"},
		{"no alignment falls back to raw", "¥ 100", "¥100", "¥ 100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rawSpan(tt.raw, tt.matched))
		})
	}
}
