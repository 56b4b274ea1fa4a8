package receipt

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"restoflow-backend/internal/models"
	"restoflow-backend/internal/pos"
)

// Fixed-width layout for 58mm thermal printers.
const width = 32

var divider = strings.Repeat("-", width)

// Data is a read-only projection of a cart or order for printing. The
// renderer has no effect on till state.
type Data struct {
	MerchantName string
	MerchantInfo string
	OrderRef     string
	Time         time.Time
	TableLabel   string
	Items        []models.OrderItem
	Totals       pos.Totals
	SplitCount   int
}

func Render(d Data) string {
	var b strings.Builder

	writeCentered(&b, d.MerchantName)
	for _, line := range strings.Split(d.MerchantInfo, "|") {
		writeCentered(&b, strings.TrimSpace(line))
	}

	b.WriteString(divider + "\n")
	writeRow(&b, "Order #: "+d.OrderRef, d.Time.Format("15:04:05"))
	b.WriteString("Table: " + d.TableLabel + "\n")
	b.WriteString(divider + "\n")

	for _, it := range d.Items {
		writeRow(&b,
			fmt.Sprintf("%dx %s", it.Quantity, it.Name),
			fmt.Sprintf("%.2f", it.Price*float64(it.Quantity)))
		for _, m := range it.Modifiers {
			b.WriteString(fmt.Sprintf("  + %s (%.2f)\n", m.Name, m.Price))
		}
		if it.Notes != "" {
			b.WriteString("  * " + it.Notes + "\n")
		}
	}

	b.WriteString(divider + "\n")
	writeRow(&b, "Subtotal", fmt.Sprintf("%.2f", d.Totals.Subtotal))
	writeRow(&b, fmt.Sprintf("Tax (%.0f%%)", pos.TaxRate*100), fmt.Sprintf("%.2f", d.Totals.Tax))
	writeRow(&b, "TOTAL", fmt.Sprintf("%.2f", d.Totals.GrandTotal))
	if d.SplitCount >= 2 {
		writeRow(&b,
			fmt.Sprintf("Split x%d, each", d.SplitCount),
			fmt.Sprintf("%.2f", pos.SplitAmount(d.Totals.GrandTotal, d.SplitCount)))
	}

	b.WriteString(divider + "\n")
	writeCentered(&b, "Thank you for dining with us!")
	writeCentered(&b, "Please come again.")

	return b.String()
}

// writeRow prints a left label and right-aligned value on one line,
// truncating the label if the two would collide. Widths are measured
// in runes: item names may be Arabic, where bytes overcount.
func writeRow(b *strings.Builder, left, right string) {
	space := width - utf8.RuneCountInString(right) - 1
	if space < 0 {
		space = 0
	}
	if leftRunes := []rune(left); len(leftRunes) > space {
		left = string(leftRunes[:space])
	}
	pad := width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(left + strings.Repeat(" ", pad) + right + "\n")
}

func writeCentered(b *strings.Builder, s string) {
	if s == "" {
		return
	}
	pad := (width - utf8.RuneCountInString(s)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad) + s + "\n")
}
