package unisatclient

import (
	"context"
	"strconv"
)

// BRC20 module of the developer service.
// docs: https://docs.unisat.io/dev/unisat-developer-service/brc-20

// brc20 history event types
const (
	BRC20_EVENT_INSCRIBE_DEPLOY   = "inscribe-deploy"
	BRC20_EVENT_INSCRIBE_MINT     = "inscribe-mint"
	BRC20_EVENT_INSCRIBE_TRANSFER = "inscribe-transfer"
	BRC20_EVENT_TRANSFER          = "transfer"
	BRC20_EVENT_SEND              = "send"
	BRC20_EVENT_RECEIVE           = "receive"
)

////////////////////////////////////////////////////////////////////////////////
// Tickers

// GetBestBlockHeight returns the best block height of BRC20 data.
func (c *Client) GetBestBlockHeight(ctx context.Context) (*Response, error) {
	return c.invokeByName(ctx, EP_BRC20_BEST_HEIGHT, nil, Page{}, Filters{})
}

func (c *Client) GetBRC20List(ctx context.Context, page Page) (*Response, error) {
	return c.invokeByName(ctx, EP_BRC20_LIST, nil, page, Filters{})
}

func (c *Client) GetBRC20Info(ctx context.Context, ticker string) (*Response, error) {
	return c.invokeByName(ctx, EP_BRC20_INFO, []string{ticker}, Page{}, Filters{})
}

func (c *Client) GetBRC20Holders(ctx context.Context, ticker string, page Page) (*Response, error) {
	return c.invokeByName(ctx, EP_BRC20_HOLDERS, []string{ticker}, page, Filters{})
}

// GetBRC20History lists ticker events, optionally narrowed to one event type
// and one block height.
func (c *Client) GetBRC20History(ctx context.Context, ticker string, page Page, filters Filters) (*Response, error) {
	return c.invokeByName(ctx, EP_BRC20_HISTORY, []string{ticker}, page, filters)
}

func (c *Client) GetBRC20TxHistory(ctx context.Context, ticker string, txid string, eventType string, page Page) (*Response, error) {
	return c.invokeByName(ctx, EP_BRC20_TX_HISTORY, []string{ticker, txid}, page, Filters{Type: eventType})
}

func (c *Client) GetBRC20HistoryByHeight(ctx context.Context, height int64, page Page) (*Response, error) {
	return c.invokeByName(ctx, EP_BRC20_HISTORY_BY_HEIGHT, []string{strconv.FormatInt(height, 10)}, page, Filters{})
}

////////////////////////////////////////////////////////////////////////////////
// Addresses

func (c *Client) GetAddressBRC20Summary(ctx context.Context, address string, page Page) (*Response, error) {
	return c.invokeByName(ctx, EP_ADDRESS_BRC20_SUMMARY, []string{address}, page, Filters{})
}

func (c *Client) GetAddressBRC20SummaryByHeight(ctx context.Context, address string, height int64, page Page) (*Response, error) {
	return c.invokeByName(ctx, EP_ADDRESS_BRC20_SUMMARY_BY_HEIGHT, []string{address, strconv.FormatInt(height, 10)}, page, Filters{})
}

func (c *Client) GetAddressBRC20TickerInfo(ctx context.Context, address string, ticker string) (*Response, error) {
	return c.invokeByName(ctx, EP_ADDRESS_BRC20_TICKER_INFO, []string{address, ticker}, Page{}, Filters{})
}

func (c *Client) GetAddressBRC20History(ctx context.Context, address string, page Page) (*Response, error) {
	return c.invokeByName(ctx, EP_ADDRESS_BRC20_HISTORY, []string{address}, page, Filters{})
}

func (c *Client) GetAddressBRC20TickerHistory(ctx context.Context, address string, ticker string, eventType string, page Page) (*Response, error) {
	return c.invokeByName(ctx, EP_ADDRESS_BRC20_TICKER_HISTORY, []string{address, ticker}, page, Filters{Type: eventType})
}
