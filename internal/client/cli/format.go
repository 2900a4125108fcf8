package cli

import (
	"strings"

	"github.com/dmitrijs2005/pocketbank/internal/client/models"
	"github.com/shopspring/decimal"
)

// FormatINR renders d as rupees with two decimals and Indian digit grouping:
// the last three integer digits form one group, the rest groups of two,
// e.g. ₹1,50,000.50.
func FormatINR(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString("₹")
	b.WriteString(groupIndian(intPart))
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(append(groups, tail), ",")
}

// FormatPhone renders a 10-digit number as 123-456-7890. Anything else is
// returned unchanged.
func FormatPhone(phone string) string {
	if len(phone) != 10 {
		return phone
	}
	return phone[:3] + "-" + phone[3:6] + "-" + phone[6:]
}

// MaskAadhar hides all but the last four digits: XXXX-XXXX-1234.
func MaskAadhar(aadhar string) string {
	if len(aadhar) < 4 {
		return aadhar
	}
	return "XXXX-XXXX-" + aadhar[len(aadhar)-4:]
}

// displayName is the account name, or the email when no name was stored.
func displayName(a models.Account) string {
	if strings.TrimSpace(a.Name) != "" {
		return a.Name
	}
	return a.Email
}
