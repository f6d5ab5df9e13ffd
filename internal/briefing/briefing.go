// Package briefing renders the contract collection into the
// natural-language document used as the system prompt for the inference
// call. The document is the entire prompt-engineering surface: the
// model receives no contextual signal besides this text and the user's
// literal message, so its structure is pinned and deterministic — the
// same collection and clock always produce the same briefing.
package briefing

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/rsinha/go-contract-desk/internal/domain"
)

// inr formats amounts with Indian digit grouping (12,34,567).
var inr = message.NewPrinter(language.MustParse("en-IN"))

const instructions = `You are a helpful assistant for a contract tracking system. ` +
	`Answer questions using only the contract records below. ` +
	`Match a person or engagement by client name or by contract title; names may be given partially or in any case. ` +
	`When asked about pay, cite the salary exactly as listed, in Indian Rupees. ` +
	`When asked about timelines, mention the number of days remaining until the end date and whether the contract is active, expiring, or expired. ` +
	`If no record matches the question, say so instead of guessing.`

// Build renders the briefing: one instruction paragraph followed by one
// block per contract enumerating every field verbatim. Contracts appear
// in the order given; statuses and remaining days are derived as of now.
func Build(contracts []domain.Contract, now time.Time) string {
	var b strings.Builder
	b.WriteString(instructions)
	b.WriteString("\n")

	if len(contracts) == 0 {
		b.WriteString("\nThere are no contracts on record.\n")
		return b.String()
	}

	for _, c := range contracts {
		days, ok := domain.DaysRemaining(c.EndDate, now)
		status := domain.DeriveStatus(c.EndDate, now)

		b.WriteString("\n")
		fmt.Fprintf(&b, "Contract #%d: %s\n", c.ID, c.Title)
		fmt.Fprintf(&b, "- Company: %s\n", c.Company)
		fmt.Fprintf(&b, "- Client: %s\n", c.ClientName)
		fmt.Fprintf(&b, "- Type: %s\n", c.ContractType)
		fmt.Fprintf(&b, "- Duration: %s to %s\n", c.StartDate, c.EndDate)
		if c.Salary > 0 {
			fmt.Fprintf(&b, "- Salary: %s\n", FormatINR(c.Salary))
		}
		if ok {
			switch {
			case days < 0:
				fmt.Fprintf(&b, "- Status: %s (ended %d days ago)\n", status, -days)
			case days == 0:
				fmt.Fprintf(&b, "- Status: %s (ends today)\n", status)
			default:
				fmt.Fprintf(&b, "- Status: %s (%d days remaining)\n", status, days)
			}
		} else {
			fmt.Fprintf(&b, "- Status: %s\n", status)
		}
		if c.Notes != "" {
			fmt.Fprintf(&b, "- Notes: %s\n", c.Notes)
		}
		if c.CreatedAt != "" {
			fmt.Fprintf(&b, "- Created: %s\n", c.CreatedAt)
		}
	}
	return b.String()
}

// FormatINR renders an amount as Indian Rupees with en-IN digit
// grouping, e.g. 1234567.5 -> "₹12,34,567.50".
func FormatINR(amount float64) string {
	if amount == float64(int64(amount)) {
		return inr.Sprintf("₹%v", number.Decimal(int64(amount)))
	}
	return inr.Sprintf("₹%v", number.Decimal(amount, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
