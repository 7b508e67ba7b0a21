package domain

// CurrencyKind identifies one of the two independent balances.
type CurrencyKind string

const (
	CurrencyXenocoins CurrencyKind = "xenocoins"
	CurrencyCash      CurrencyKind = "cash"
)

// Valid reports whether the kind names a known balance.
func (k CurrencyKind) Valid() bool {
	return k == CurrencyXenocoins || k == CurrencyCash
}

// Display returns the user-facing currency name.
func (k CurrencyKind) Display() string {
	if k == CurrencyCash {
		return "Cash"
	}
	return "Xenocoins"
}
