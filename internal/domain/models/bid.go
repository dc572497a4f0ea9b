package models

// Bid represents a single procurement bid row from a monthly sales CSV file.
//
// Column mapping (CSV position → field):
//
//	0 Title    → Title (the sort/search key)
//	1 BidID    → BidID (unique identifier)
//	4 Amount   → Amount (currency symbol stripped before parsing)
//	8 Fund     → Fund
type Bid struct {
	BidID  string
	Title  string
	Fund   string
	Amount float64
}
