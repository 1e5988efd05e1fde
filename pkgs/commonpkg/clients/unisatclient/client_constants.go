package unisatclient

// General endpoints
const (
	EP_BLOCKCHAIN_INFO          = "blockchain-info"
	EP_BLOCK_TXS                = "block-txs"
	EP_TX_INFO                  = "tx-info"
	EP_TX_INPUTS                = "tx-inputs"
	EP_TX_OUTPUTS               = "tx-outputs"
	EP_INSCRIPTION_INFO         = "inscription-info"
	EP_ADDRESS_BALANCE          = "address-balance"
	EP_ADDRESS_HISTORY          = "address-history"
	EP_ADDRESS_UTXO             = "address-utxo"
	EP_ADDRESS_INSCRIPTION_UTXO = "address-inscription-utxo"
	EP_ADDRESS_INSCRIPTIONS     = "address-inscriptions"
)

// BRC20 endpoints
const (
	EP_BRC20_BEST_HEIGHT               = "brc20-bestheight"
	EP_BRC20_LIST                      = "brc20-list"
	EP_BRC20_INFO                      = "brc20-info"
	EP_BRC20_HOLDERS                   = "brc20-holders"
	EP_BRC20_HISTORY                   = "brc20-history"
	EP_BRC20_TX_HISTORY                = "brc20-tx-history"
	EP_BRC20_HISTORY_BY_HEIGHT         = "brc20-history-by-height"
	EP_ADDRESS_BRC20_SUMMARY           = "address-brc20-summary"
	EP_ADDRESS_BRC20_SUMMARY_BY_HEIGHT = "address-brc20-summary-by-height"
	EP_ADDRESS_BRC20_TICKER_INFO       = "address-brc20-ticker-info"
	EP_ADDRESS_BRC20_HISTORY           = "address-brc20-history"
	EP_ADDRESS_BRC20_TICKER_HISTORY    = "address-brc20-ticker-history"
)

// Default Values
const (
	DEFAULT_PAGE_SIZE = 16
)

////////////////////////////////////////////////////////////////////////////////

var catalogue = []Endpoint{
	// docs: https://docs.unisat.io/dev/unisat-developer-service/general
	{
		Name:        EP_BLOCKCHAIN_INFO,
		Route:       "/v1/indexer/blockchain/info",
		Description: "chain tip and sync state",
	},
	{
		Name:        EP_BLOCK_TXS,
		Route:       "/v1/indexer/block/{height}/txs",
		PathParams:  []string{"height"},
		Paging:      PAGING_CURSOR_SIZE,
		Description: "transactions of a block",
	},
	{
		Name:        EP_TX_INFO,
		Route:       "/v1/indexer/tx/{txid}",
		PathParams:  []string{"txid"},
		Description: "transaction summary",
	},
	{
		Name:        EP_TX_INPUTS,
		Route:       "/v1/indexer/tx/{txid}/ins",
		PathParams:  []string{"txid"},
		Description: "transaction inputs",
	},
	{
		Name:        EP_TX_OUTPUTS,
		Route:       "/v1/indexer/tx/{txid}/outs",
		PathParams:  []string{"txid"},
		Paging:      PAGING_CURSOR_SIZE,
		Description: "transaction outputs",
	},
	{
		Name:        EP_INSCRIPTION_INFO,
		Route:       "/v1/indexer/inscription/info/{inscriptionId}",
		PathParams:  []string{"inscriptionId"},
		Description: "inscription detail",
	},
	{
		Name:        EP_ADDRESS_BALANCE,
		Route:       "/v1/indexer/address/{address}/balance",
		PathParams:  []string{"address"},
		Description: "address balance",
	},
	{
		Name:        EP_ADDRESS_HISTORY,
		Route:       "/v1/indexer/address/{address}/history",
		PathParams:  []string{"address"},
		Paging:      PAGING_CURSOR_SIZE,
		Description: "address transaction history",
	},
	{
		Name:        EP_ADDRESS_UTXO,
		Route:       "/v1/indexer/address/{address}/utxo-data",
		PathParams:  []string{"address"},
		Paging:      PAGING_CURSOR_SIZE,
		Description: "address utxos without inscriptions",
	},
	{
		Name:        EP_ADDRESS_INSCRIPTION_UTXO,
		Route:       "/v1/indexer/address/{address}/inscription-utxo-data",
		PathParams:  []string{"address"},
		Paging:      PAGING_CURSOR_SIZE,
		Description: "address utxos carrying inscriptions",
	},
	{
		Name:        EP_ADDRESS_INSCRIPTIONS,
		Route:       "/v1/indexer/address/{address}/inscription-data",
		PathParams:  []string{"address"},
		Paging:      PAGING_CURSOR_SIZE,
		Description: "inscriptions held by an address",
	},

	// docs: https://docs.unisat.io/dev/unisat-developer-service/brc-20
	{
		Name:        EP_BRC20_BEST_HEIGHT,
		Route:       "/v1/indexer/brc20/bestheight",
		Description: "best block height of brc20 data",
	},
	{
		Name:        EP_BRC20_LIST,
		Route:       "/v1/indexer/brc20/list",
		Paging:      PAGING_START_LIMIT,
		Description: "brc20 tickers",
	},
	{
		Name:        EP_BRC20_INFO,
		Route:       "/v1/indexer/brc20/{ticker}/info",
		PathParams:  []string{"ticker"},
		Description: "ticker detail",
	},
	{
		Name:        EP_BRC20_HOLDERS,
		Route:       "/v1/indexer/brc20/{ticker}/holders",
		PathParams:  []string{"ticker"},
		Paging:      PAGING_START_LIMIT,
		Description: "ticker holders",
	},
	{
		Name:        EP_BRC20_HISTORY,
		Route:       "/v1/indexer/brc20/{ticker}/history",
		PathParams:  []string{"ticker"},
		Paging:      PAGING_START_LIMIT,
		Filters:     []string{FILTER_TYPE, FILTER_HEIGHT},
		Description: "ticker event history",
	},
	{
		Name:        EP_BRC20_TX_HISTORY,
		Route:       "/v1/indexer/brc20/{ticker}/tx/{txid}/history",
		PathParams:  []string{"ticker", "txid"},
		Paging:      PAGING_START_LIMIT,
		Filters:     []string{FILTER_TYPE},
		Description: "ticker events of one transaction",
	},
	{
		Name:        EP_BRC20_HISTORY_BY_HEIGHT,
		Route:       "/v1/indexer/brc20/history-by-height/{height}",
		PathParams:  []string{"height"},
		Paging:      PAGING_START_LIMIT,
		Description: "brc20 events of a block",
	},
	{
		Name:        EP_ADDRESS_BRC20_SUMMARY,
		Route:       "/v1/indexer/address/{address}/brc20/summary",
		PathParams:  []string{"address"},
		Paging:      PAGING_START_LIMIT,
		Description: "brc20 balances of an address",
	},
	{
		Name:        EP_ADDRESS_BRC20_SUMMARY_BY_HEIGHT,
		Route:       "/v1/indexer/address/{address}/brc20/summary-by-height/{height}",
		PathParams:  []string{"address", "height"},
		Paging:      PAGING_START_LIMIT,
		Description: "brc20 balances of an address at a height",
	},
	{
		Name:        EP_ADDRESS_BRC20_TICKER_INFO,
		Route:       "/v1/indexer/address/{address}/brc20/{ticker}/info",
		PathParams:  []string{"address", "ticker"},
		Description: "one ticker balance of an address",
	},
	{
		Name:        EP_ADDRESS_BRC20_HISTORY,
		Route:       "/v1/indexer/address/{address}/brc20/history",
		PathParams:  []string{"address"},
		Paging:      PAGING_START_LIMIT,
		Description: "brc20 events of an address",
	},
	{
		Name:        EP_ADDRESS_BRC20_TICKER_HISTORY,
		Route:       "/v1/indexer/address/{address}/brc20/{ticker}/history",
		PathParams:  []string{"address", "ticker"},
		Paging:      PAGING_START_LIMIT,
		Filters:     []string{FILTER_TYPE},
		Description: "one ticker's events of an address",
	},
}
