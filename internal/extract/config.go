package extract

import (
	"log/slog"
	"time"
)

// Era describes one Japanese calendar era (元号): the Gregorian year of
// era year 1, the last valid in-era year, and the designators OCR text
// may use for it.
type Era struct {
	Name    string
	Start   int
	MaxYear int
	Aliases []string
}

// defaultEras, newest first. Reiwa is open-ended; capping it at 99
// keeps the normalizer a pure function of its inputs instead of
// consulting the clock.
var defaultEras = []Era{
	{Name: "令和", Start: 2019, MaxYear: 99, Aliases: []string{"令和", "令", "R"}},
	{Name: "平成", Start: 1989, MaxYear: 31, Aliases: []string{"平成", "平", "H"}},
	{Name: "昭和", Start: 1926, MaxYear: 64, Aliases: []string{"昭和", "昭", "S"}},
	{Name: "大正", Start: 1912, MaxYear: 15, Aliases: []string{"大正", "大", "T"}},
}

// totalKeyword maps a total-indicating keyword to its weight. The list
// is scanned in order and the first hit wins, so entries are sorted by
// descending weight; that also resolves substring collisions (合計 and
// 小計 both contain 計 and must be seen first).
type totalKeyword struct {
	word   string
	weight float64
}

var defaultTotalKeywords = []totalKeyword{
	{"合計", 1.0},
	{"税込", 0.9},
	{"お会計", 0.9},
	{"総額", 0.8},
	{"小計", 0.7},
	{"計", 0.6},
	{"金額", 0.5},
}

// Config holds thresholds and behavior knobs for the extractor.
// Zero values select the defaults noted per field.
type Config struct {
	ReferenceYear  int     // year assumed for month/day-only dates; <=0 means the current year
	MaxCandidates  int     // shortlist size per field, default 3
	HeaderBand     float64 // dates above this vertical position get a bonus, default 0.30
	PayeeBand      float64 // payee positional bonus band, default 0.40
	BodyTop        float64 // purpose item band upper edge, default 0.30
	BodyBottom     float64 // purpose item band lower edge, default 0.80
	LargeFontSize  float64 // payee typographic bonus threshold, default 16
	NearbyDistance float64 // max center distance for keyword proximity, default 0.15
	MinPayeeLength int     // minimum payee rune count, default 2
}

func (c *Config) applyDefaults() {
	if c.ReferenceYear <= 0 {
		c.ReferenceYear = time.Now().Year()
	}
	if c.MaxCandidates <= 0 {
		c.MaxCandidates = 3
	}
	if c.HeaderBand <= 0 {
		c.HeaderBand = 0.30
	}
	if c.PayeeBand <= 0 {
		c.PayeeBand = 0.40
	}
	if c.BodyTop <= 0 {
		c.BodyTop = 0.30
	}
	if c.BodyBottom <= 0 {
		c.BodyBottom = 0.80
	}
	if c.LargeFontSize <= 0 {
		c.LargeFontSize = 16
	}
	if c.NearbyDistance <= 0 {
		c.NearbyDistance = 0.15
	}
	if c.MinPayeeLength <= 0 {
		c.MinPayeeLength = 2
	}
}

// Extractor turns OCR text blocks into ranked field candidates. All
// configuration is fixed at construction; every method is a pure
// function of its inputs.
type Extractor struct {
	cfg           Config
	logger        *slog.Logger
	eraByAlias    map[string]Era
	totalKeywords []totalKeyword
}

func NewExtractor(logger *slog.Logger, cfg Config) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	cfg.applyDefaults()

	byAlias := make(map[string]Era)
	for _, era := range defaultEras {
		for _, a := range era.Aliases {
			byAlias[a] = era
		}
	}
	return &Extractor{
		cfg:           cfg,
		logger:        logger,
		eraByAlias:    byAlias,
		totalKeywords: defaultTotalKeywords,
	}
}
