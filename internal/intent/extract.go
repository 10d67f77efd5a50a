// Package intent turns free-text utterances into structured transaction
// intents using fixed keyword and regexp matching. It deliberately does no
// real natural-language understanding; the patterns mirror what the banking
// assistant actually needs to recognize.
package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/punchamoorthee/bankmitra/internal/domain"
)

// Currency-marked amounts win over bare numbers so a long account number in
// the same utterance is not mistaken for the amount when a currency hint
// exists. Marker on either side of the number.
var (
	currencyAmountRe = regexp.MustCompile(`(?i)(?:₹|rs\.?|rupees?|inr)\s*([\d,]+(?:\.\d+)?)|([\d,]+(?:\.\d+)?)\s*(?:₹|rs\.?|rupees?|inr)`)
	bareNumberRe     = regexp.MustCompile(`\b(\d{2,})\b`)

	verbRecipientRe   = regexp.MustCompile(`(?i)(?:send|transfer|pay|give)\s+(?:money\s+to|rupees?\s+to|to)\s+([A-Za-z]+(?:\s+[A-Za-z]+)?)`)
	afterAmountNameRe = regexp.MustCompile(`(?i)₹?[\d,]+\s+(?:to|for)\s+([A-Za-z]+(?:\s+[A-Za-z]+)?)`)
)

// ExtractAmount finds the monetary amount in an utterance. A currency-marked
// number is preferred; otherwise the first standalone number with at least
// two digits is used. Grouping commas are stripped and any decimal fraction
// is truncated, never rounded.
func ExtractAmount(text string) (domain.Money, bool) {
	if m := currencyAmountRe.FindStringSubmatch(text); m != nil {
		raw := m[1]
		if raw == "" {
			raw = m[2]
		}
		return parseRupees(raw)
	}
	if m := bareNumberRe.FindStringSubmatch(text); m != nil {
		return parseRupees(m[1])
	}
	return 0, false
}

func parseRupees(raw string) (domain.Money, bool) {
	raw = strings.ReplaceAll(raw, ",", "")
	if dot := strings.IndexByte(raw, '.'); dot >= 0 {
		raw = raw[:dot]
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// ExtractRecipient pulls a one-or-two-word name out of an utterance: first
// from a verb-led phrase ("transfer money to Rahul"), then from the tokens
// following an amount ("500 to Rahul"). The empty result means the caller
// must substitute a placeholder, never fail the turn.
func ExtractRecipient(text string) (string, bool) {
	if m := verbRecipientRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := afterAmountNameRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}
