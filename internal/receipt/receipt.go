// Package receipt renders an order into a fixed-width, print-friendly
// layout. Rendering is a pure function of the order and (optional) user;
// the HTTP boundary decides whether the result is shown for printing or
// downloaded as a standalone file.
package receipt

import (
	"fmt"
	"html"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sangeeth-21/velkani-admin/internal/domain/order"
)

const width = 42

type StoreInfo struct {
	Name    string
	Address string
	Phone   string
}

type Formatter struct {
	store StoreInfo
}

func NewFormatter(store StoreInfo) *Formatter {
	return &Formatter{store: store}
}

// Render produces the plain-text receipt body: store header, one line per
// item (name, weight, amount), total and footer. A nil user renders the
// walk-in fallbacks.
func (f *Formatter) Render(o order.Order, u *order.User) string {
	var b strings.Builder

	writeCentered(&b, strings.ToUpper(f.store.Name))
	if f.store.Address != "" {
		writeCentered(&b, f.store.Address)
	}
	if f.store.Phone != "" {
		writeCentered(&b, "Ph: "+f.store.Phone)
	}
	b.WriteString(rule())

	fmt.Fprintf(&b, "Receipt : %s\n", o.ShortID())
	fmt.Fprintf(&b, "Date    : %s %s\n", o.Date, o.Time)

	name, account, phone := "Walk-in Customer", "System", "N/A"
	if u != nil {
		if u.Name != "" {
			name = u.Name
		}
		if u.UID != "" {
			account = u.UID
		}
		if u.Number != "" {
			phone = u.Number
		}
	}
	fmt.Fprintf(&b, "Customer: %s\n", name)
	fmt.Fprintf(&b, "Account : %s\n", account)
	fmt.Fprintf(&b, "Phone   : %s\n", phone)
	b.WriteString(rule())

	fmt.Fprintf(&b, "%-22s%8s%12s\n", "Item", "Weight", "Amount")
	b.WriteString(rule())
	for _, it := range o.Items {
		fmt.Fprintf(&b, "%-22s%8s%12.2f\n", clip(it.ProductName, 22), clip(it.Weight, 8), it.Amount.Float64())
	}
	b.WriteString(rule())
	fmt.Fprintf(&b, "%-30s%12.2f\n", "TOTAL", o.Amount.Float64())
	b.WriteString(rule())

	writeCentered(&b, "Thank you for shopping with us!")
	writeCentered(&b, "Please visit again")
	return b.String()
}

// Document wraps the rendered receipt in a self-contained HTML page with
// inline styles only, suitable for download. With autoPrint the page opens
// the print dialog on load, which is how the admin UI printed receipts.
func (f *Formatter) Document(o order.Order, u *order.User, autoPrint bool) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>Receipt %s</title>\n", html.EscapeString(o.ShortID()))
	b.WriteString("<style>body{margin:0;padding:16px;background:#fff}" +
		"pre{font-family:monospace;font-size:12px;line-height:1.4;margin:0}</style>\n")
	b.WriteString("</head>\n<body>\n<pre>")
	b.WriteString(html.EscapeString(f.Render(o, u)))
	b.WriteString("</pre>\n")
	if autoPrint {
		b.WriteString("<script>window.onload=function(){window.print()}</script>\n")
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// FileName names the downloaded receipt after the order's short id and the
// current date.
func FileName(o order.Order, now time.Time) string {
	return fmt.Sprintf("receipt-%s-%s.html", o.ShortID(), now.Format("2006-01-02"))
}

func writeCentered(b *strings.Builder, s string) {
	n := utf8.RuneCountInString(s)
	if n >= width {
		b.WriteString(s)
		b.WriteByte('\n')
		return
	}
	pad := (width - n) / 2
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(s)
	b.WriteByte('\n')
}

func rule() string {
	return strings.Repeat("-", width) + "\n"
}

// clip shortens to max runes, never cutting inside a multi-byte character.
func clip(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
