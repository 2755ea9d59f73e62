package market

import "fmt"

// typeVoidRelic is excluded from price checks: relics are not tradable
// through the order-book route.
const typeVoidRelic = "void relic"

// UnknownItemError means the item is not in the catalog, or its type is
// excluded from price checks.
type UnknownItemError struct {
	Item string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("unknown or untradable item %q", e.Item)
}

// NoOnlineSellersError means the order book held no offer from a seller
// who is currently online.
type NoOnlineSellersError struct {
	Item string
}

func (e *NoOnlineSellersError) Error() string {
	return fmt.Sprintf("no online sellers for %q", e.Item)
}
