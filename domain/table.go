package domain

// Table is a mongo collection name
type Table string

const (
	TableRoyaltyTables   Table = "royalty_tables"
	TableRoyaltyManagers Table = "royalty_managers"
	TableListings        Table = "listings"
	TableAssets          Table = "assets"
	TableBalances        Table = "balances"
	TableLedgerTransfers Table = "ledger_transfers"
	TableEvents          Table = "events"
	TableCounters        Table = "counters"
)
