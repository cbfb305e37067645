package client

// Cache key resources. List caches append serialized filters to these, so
// prefix invalidation clears every variant of a list at once.
const (
	keyBankAccounts     = "bankAccounts"
	keyBankAccountStats = "bankAccountStats"
	keyTransactions     = "transactions"
	keyExchanges        = "exchanges"
	keyReserves         = "reserves"
	keyDashboard        = "dashboard"
	keyDilars           = "dilars"
	keyCategories       = "categories"
)

// invalidationTable is the single source of truth for which cached resources
// a mutation touches. Every mutating method looks its resource up here rather
// than hand-picking keys, so a new dependent cache only needs one edit.
var invalidationTable = map[string][]string{
	keyBankAccounts: {keyBankAccounts, keyBankAccountStats, keyTransactions},
	keyExchanges:    {keyExchanges, keyReserves, keyDashboard},
	keyDilars:       {keyDilars},
	keyCategories:   {keyCategories},
}

// invalidate marks every cache family that depends on resource stale
func (c *Client) invalidate(resource string) {
	for _, prefix := range invalidationTable[resource] {
		c.cache.InvalidatePrefix(prefix)
	}
}
