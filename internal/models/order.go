package models

// Order is a single sell offer from the market order book.
type Order struct {
	Seller string
	Online bool
	Price  int
}
