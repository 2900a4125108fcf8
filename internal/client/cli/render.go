package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/pocketbank/internal/client/models"
)

// recentOnDashboard is how many deposits the dashboard shows.
const recentOnDashboard = 5

func renderDashboard(w io.Writer, d *models.Dashboard) {
	a := d.Account
	fmt.Fprintf(w, "\nWelcome, %s\n", displayName(a))
	fmt.Fprintf(w, "  Balance: %s\n", FormatINR(a.Balance))
	fmt.Fprintf(w, "  Email:   %s\n", a.Email)
	fmt.Fprintf(w, "  Phone:   %s\n", FormatPhone(a.Phone))
	fmt.Fprintf(w, "  Aadhar:  %s\n", MaskAadhar(a.Aadhar))
	fmt.Fprintf(w, "  PAN:     %s\n", a.PAN)

	recent := d.History
	if len(recent) > recentOnDashboard {
		recent = recent[:recentOnDashboard]
	}
	fmt.Fprintln(w, "Recent deposits:")
	renderEntries(w, recent)
	fmt.Fprintln(w)
}

func renderHistory(w io.Writer, entries []models.DepositEntry) {
	fmt.Fprintf(w, "Deposit history (%d):\n", len(entries))
	renderEntries(w, entries)
}

func renderEntries(w io.Writer, entries []models.DepositEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "  No deposits yet")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "  +%s  %s\n", FormatINR(e.Amount), e.Timestamp)
	}
}
