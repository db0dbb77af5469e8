package order

import "github.com/sangeeth-21/velkani-admin/internal/domain/catalog"

type Item struct {
	ID          string         `json:"id"`
	ProductName string         `json:"productname"`
	ProductUID  string         `json:"productuid"`
	OrderUID    string         `json:"orderuid"`
	Amount      catalog.Amount `json:"amount"`
	Weight      string         `json:"weight"`
	UID         string         `json:"uid"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
}

type Order struct {
	ID        string         `json:"id"`
	UserUID   string         `json:"uiduser"`
	Date      string         `json:"date"`
	Time      string         `json:"time"`
	Amount    catalog.Amount `json:"amount"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
	Items     []Item         `json:"items"`
}

// ShortID is the truncated id the UI shows in listings and receipts.
func (o Order) ShortID() string {
	if len(o.ID) <= 8 {
		return o.ID
	}
	return o.ID[:8]
}

type User struct {
	SNo       string `json:"sno"`
	UID       string `json:"uid"`
	Name      string `json:"name"`
	Number    string `json:"number"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
