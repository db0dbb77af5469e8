package receipt

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/sangeeth-21/velkani-admin/internal/domain/order"
)

func sampleOrder() order.Order {
	return order.Order{
		ID:     "a1b2c3d4e5f6",
		Date:   "2026-09-01",
		Time:   "14:32:05",
		Amount: 125.50,
		Items: []order.Item{
			{ProductName: "Toor Dal", Weight: "1kg", Amount: 80},
			{ProductName: "Jaggery", Weight: "500g", Amount: 45.50},
		},
	}
}

func newFormatter() *Formatter {
	return NewFormatter(StoreInfo{
		Name:    "Sri Velkani Store",
		Address: "12 Bazaar Street",
		Phone:   "98765 43210",
	})
}

func TestRenderLayout(t *testing.T) {
	out := newFormatter().Render(sampleOrder(), &order.User{
		UID: "u-77", Name: "Priya", Number: "90000 11111",
	})

	assert.Contains(t, out, "SRI VELKANI STORE")
	assert.Contains(t, out, "12 Bazaar Street")
	assert.Contains(t, out, "Receipt : a1b2c3d4")
	assert.Contains(t, out, "Customer: Priya")
	assert.Contains(t, out, "Phone   : 90000 11111")
	assert.Contains(t, out, "Toor Dal")
	assert.Contains(t, out, "Jaggery")
	assert.Contains(t, out, "125.50")
	assert.Contains(t, out, "Thank you for shopping with us!")
}

func TestRenderMissingUserFallbacks(t *testing.T) {
	out := newFormatter().Render(sampleOrder(), nil)

	assert.Contains(t, out, "Customer: Walk-in Customer")
	assert.Contains(t, out, "Account : System")
	assert.Contains(t, out, "Phone   : N/A")
}

func TestRenderIsPure(t *testing.T) {
	f := newFormatter()
	o := sampleOrder()
	assert.Equal(t, f.Render(o, nil), f.Render(o, nil))
}

func TestRenderLinesFitWidth(t *testing.T) {
	out := newFormatter().Render(sampleOrder(), nil)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), width, "line %q", line)
	}
}

func TestRenderHandlesNonASCIINames(t *testing.T) {
	f := NewFormatter(StoreInfo{Name: "ஸ்ரீ வேல்கனி ஸ்டோர்"})
	o := sampleOrder()
	o.Items[0].ProductName = strings.Repeat("த", 30)

	out := f.Render(o, nil)
	assert.True(t, utf8.ValidString(out))
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, utf8.RuneCountInString(line), width, "line %q", line)
	}
}

func TestClipKeepsRuneBoundaries(t *testing.T) {
	got := clip(strings.Repeat("த", 30), 22)
	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, 22, utf8.RuneCountInString(got))

	assert.Equal(t, "தத", clip(strings.Repeat("த", 5), 2))
}

func TestDocumentIsSelfContained(t *testing.T) {
	doc := newFormatter().Document(sampleOrder(), nil, false)

	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "<style>")
	assert.NotContains(t, doc, "href=", "no external references")
	assert.NotContains(t, doc, "window.print")

	printable := newFormatter().Document(sampleOrder(), nil, true)
	assert.Contains(t, printable, "window.print")
}

func TestDocumentEscapesMarkup(t *testing.T) {
	o := sampleOrder()
	o.Items[0].ProductName = "<b>Dal</b>"
	doc := newFormatter().Document(o, nil, false)
	assert.NotContains(t, doc, "<b>Dal")
}

func TestFileName(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "receipt-a1b2c3d4-2026-09-01.html", FileName(sampleOrder(), now))
}
