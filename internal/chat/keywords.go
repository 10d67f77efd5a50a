package chat

import (
	"strconv"
	"strings"

	"github.com/punchamoorthee/bankmitra/internal/domain"
	"github.com/punchamoorthee/bankmitra/internal/i18n"
)

// Informational keyword lists across the supported languages. Matched as
// substrings of the lowered utterance, in this order; the generic help
// response is the fallback.
var infoKeywords = []struct {
	key      i18n.Key
	keywords []string
}{
	{i18n.KeyBalance, []string{"balance", "शेष", "इरुप्पु", "இருப்பு", "నిల్వ", "ಶಿಲ್ಕು", "शिल्लक", "ব্যালেন্স", "બેલેન્સ"}},
	{i18n.KeySavings, []string{"saving", "बचत", "சேமிப்பு", "పొదుపు", "ಉಳಿತಾಯ", "সঞ্চয়", "બચત"}},
	{i18n.KeyTransactions, []string{"transaction", "लेनदेन", "பரிமாற்றம்", "లావాదేవీ", "ವಹಿವಾಟು", "व्यवहार", "লেনদেন", "વ્યવહાર"}},
	{i18n.KeyBills, []string{"bill", "बिल", "பில்", "బిల్", "ಬಿಲ್", "বিল", "બિલ"}},
}

// informational answers a non-transactional utterance from the snapshot.
func (s *Session) informational(utterance, language string, snap *domain.Snapshot) string {
	lower := strings.ToLower(utterance)
	for _, entry := range infoKeywords {
		if !containsAny(lower, entry.keywords) {
			continue
		}
		switch entry.key {
		case i18n.KeyBalance:
			return i18n.Render(i18n.KeyBalance, language, map[string]string{
				"balance":   i18n.Rupees(snap.Balance),
				"available": i18n.Rupees(snap.Balance * 80 / 100),
			})
		case i18n.KeySavings:
			return i18n.Render(i18n.KeySavings, language, map[string]string{
				"savings": i18n.Rupees(snap.Savings),
			})
		case i18n.KeyTransactions:
			return i18n.Render(i18n.KeyTransactions, language, map[string]string{
				"count": strconv.Itoa(len(snap.Transactions)),
			})
		case i18n.KeyBills:
			pending := snap.PendingBills()
			var total domain.Money
			for _, b := range pending {
				total += b.Amount
			}
			return i18n.Render(i18n.KeyBills, language, map[string]string{
				"count": strconv.Itoa(len(pending)),
				"total": i18n.Rupees(total),
			})
		}
	}
	return i18n.Render(i18n.KeyHelp, language, nil)
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
