package receipt

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Parser extracts structured receipt data from OCR text. The clock is
// injectable so the date fallback is testable.
type Parser struct {
	now func() time.Time
}

type ParserOption func(*Parser)

func WithClock(now func() time.Time) ParserOption {
	return func(p *Parser) {
		p.now = now
	}
}

func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{now: time.Now}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse extracts merchant, total, date and line items from OCR text.
// ocrConfidence is the engine's 0-100 score; each successful extraction
// boosts the final 0-1 confidence.
func (p *Parser) Parse(text string, ocrConfidence float64) Data {
	var lines []string

	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	data := Data{
		Merchant:    extractMerchant(lines),
		AmountCents: extractAmount(lines),
		Date:        p.extractDate(lines),
		Items:       extractItems(lines),
		RawText:     text,
	}

	confidence := ocrConfidence / 100

	if data.Merchant != unknownMerchant {
		confidence += 0.1
	}

	if data.AmountCents > 0 {
		confidence += 0.2
	}

	if !data.Date.IsZero() {
		confidence += 0.1
	}

	if len(data.Items) > 0 {
		confidence += 0.1
	}

	if confidence > 1.0 {
		confidence = 1.0
	}

	data.Confidence = confidence

	return data
}

var knownMerchants = []string{
	"walmart", "target", "kroger", "safeway", "costco", "home depot",
	"best buy", "starbucks", "mcdonalds", "subway", "cvs", "walgreens",
	"store", "market", "shop", "restaurant", "cafe",
}

var digitsOnly = regexp.MustCompile(`^\d+$`)

// extractMerchant scans the first few lines for a known store name, then
// falls back to the first substantial line.
func extractMerchant(lines []string) string {
	limit := min(5, len(lines))

	for i := range limit {
		line := lines[i]

		if len(line) < 3 || digitsOnly.MatchString(line) || strings.Contains(line, "$") {
			continue
		}

		lower := strings.ToLower(line)
		for _, name := range knownMerchants {
			if strings.Contains(lower, name) {
				return cleanMerchantName(line)
			}
		}

		if i == 0 && len(line) > 3 &&
			!strings.Contains(lower, "receipt") && !strings.Contains(lower, "store") {
			return cleanMerchantName(line)
		}
	}

	return unknownMerchant
}

var (
	merchantJunk   = regexp.MustCompile(`[#*]+`)
	merchantSuffix = regexp.MustCompile(`(?i)(store.*|inc\.?)$`)
)

func cleanMerchantName(name string) string {
	name = merchantJunk.ReplaceAllString(name, "")
	name = merchantSuffix.ReplaceAllString(name, "")
	name = strings.TrimSpace(strings.ToLower(name))

	words := strings.Fields(name)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}

	return strings.Join(words, " ")
}

var (
	amountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)total.*?\$?(\d+\.?\d*)`),
		regexp.MustCompile(`(?i)amount.*?\$?(\d+\.?\d*)`),
		regexp.MustCompile(`^\$?(\d+\.\d{2})$`),
		regexp.MustCompile(`(?i)balance.*?\$?(\d+\.?\d*)`),
		regexp.MustCompile(`(?i)due.*?\$?(\d+\.?\d*)`),
	}
	dollarAmount = regexp.MustCompile(`\$(\d+\.\d{2})`)
)

// extractAmount returns the largest amount on the receipt, which is almost
// always the total.
func extractAmount(lines []string) int64 {
	var maxCents int64

	record := func(raw string) {
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return
		}

		cents := value.Mul(decimal.NewFromInt(100)).IntPart()
		if cents > maxCents {
			maxCents = cents
		}
	}

	for _, line := range lines {
		for _, pattern := range amountPatterns {
			if match := pattern.FindStringSubmatch(line); match != nil {
				record(match[1])
			}
		}

		for _, match := range dollarAmount.FindAllStringSubmatch(line, -1) {
			record(match[1])
		}
	}

	return maxCents
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`),
	regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{2,4}`),
	regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}`),
	regexp.MustCompile(`(?i)(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\w*\s+\d{1,2},?\s+\d{2,4}`),
}

var dateLayouts = []string{
	"1/2/2006",
	"1/2/06",
	"1-2-2006",
	"1-2-06",
	"2006-1-2",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
}

// extractDate returns the first parseable date on the receipt, or today.
func (p *Parser) extractDate(lines []string) time.Time {
	for _, line := range lines {
		for _, pattern := range datePatterns {
			match := pattern.FindString(line)
			if match == "" {
				continue
			}

			for _, layout := range dateLayouts {
				if date, err := time.Parse(layout, match); err == nil {
					return date
				}
			}
		}
	}

	return p.now().Truncate(24 * time.Hour)
}

var (
	nonItemLine = regexp.MustCompile(`(?i)total|tax|subtotal|change|cash|card|visa|mastercard|amex|thank you|receipt|store|address|phone`)
	itemLine    = regexp.MustCompile(`^(.+?)\s+\$?(\d+\.\d{2})$`)
	qtyPrefix   = regexp.MustCompile(`(?i)^(\d+)\s*x?\s*`)
	itemJunk    = regexp.MustCompile(`[*#]+`)
)

// extractItems collects "NAME $PRICE" lines, skipping totals, payment
// details and boilerplate.
func extractItems(lines []string) []Item {
	var items []Item

	for _, line := range lines {
		if len(line) < 3 || nonItemLine.MatchString(line) {
			continue
		}

		match := itemLine.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		name := strings.TrimSpace(match[1])

		price, err := decimal.NewFromString(match[2])
		if err != nil {
			continue
		}

		cents := price.Mul(decimal.NewFromInt(100)).IntPart()
		if len(name) <= 2 || cents <= 0 || cents >= maxItemCents {
			continue
		}

		items = append(items, Item{
			Name:       cleanItemName(name),
			PriceCents: cents,
			Quantity:   extractQuantity(name),
		})
	}

	return items
}

func cleanItemName(name string) string {
	name = qtyPrefix.ReplaceAllString(name, "")
	name = itemJunk.ReplaceAllString(name, "")

	return strings.TrimSpace(name)
}

func extractQuantity(name string) int {
	match := qtyPrefix.FindStringSubmatch(name)
	if match == nil {
		return 0
	}

	qty, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}

	return qty
}
