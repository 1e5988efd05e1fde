package unisatclient

import (
	"context"
	"strconv"
)

// General module of the developer service.
// docs: https://docs.unisat.io/dev/unisat-developer-service/general

////////////////////////////////////////////////////////////////////////////////
// Blocks & Transactions

func (c *Client) GetBlockchainInfo(ctx context.Context) (*Response, error) {
	return c.invokeByName(ctx, EP_BLOCKCHAIN_INFO, nil, Page{}, Filters{})
}

func (c *Client) GetBlockTransactions(ctx context.Context, height int64, page Page) (*Response, error) {
	return c.invokeByName(ctx, EP_BLOCK_TXS, []string{strconv.FormatInt(height, 10)}, page, Filters{})
}

func (c *Client) GetTxInfo(ctx context.Context, txid string) (*Response, error) {
	return c.invokeByName(ctx, EP_TX_INFO, []string{txid}, Page{}, Filters{})
}

func (c *Client) GetTxInputs(ctx context.Context, txid string) (*Response, error) {
	return c.invokeByName(ctx, EP_TX_INPUTS, []string{txid}, Page{}, Filters{})
}

func (c *Client) GetTxOutputs(ctx context.Context, txid string, page Page) (*Response, error) {
	return c.invokeByName(ctx, EP_TX_OUTPUTS, []string{txid}, page, Filters{})
}

func (c *Client) GetInscriptionInfo(ctx context.Context, inscriptionId string) (*Response, error) {
	return c.invokeByName(ctx, EP_INSCRIPTION_INFO, []string{inscriptionId}, Page{}, Filters{})
}

////////////////////////////////////////////////////////////////////////////////
// Addresses

func (c *Client) GetAddressBalance(ctx context.Context, address string) (*Response, error) {
	return c.invokeByName(ctx, EP_ADDRESS_BALANCE, []string{address}, Page{}, Filters{})
}

func (c *Client) GetAddressHistory(ctx context.Context, address string, page Page) (*Response, error) {
	return c.invokeByName(ctx, EP_ADDRESS_HISTORY, []string{address}, page, Filters{})
}

// GetAddressUtxo lists the address utxos that carry no inscription.
func (c *Client) GetAddressUtxo(ctx context.Context, address string, page Page) (*Response, error) {
	return c.invokeByName(ctx, EP_ADDRESS_UTXO, []string{address}, page, Filters{})
}

func (c *Client) GetAddressInscriptionUtxo(ctx context.Context, address string, page Page) (*Response, error) {
	return c.invokeByName(ctx, EP_ADDRESS_INSCRIPTION_UTXO, []string{address}, page, Filters{})
}

func (c *Client) GetAddressInscriptions(ctx context.Context, address string, page Page) (*Response, error) {
	return c.invokeByName(ctx, EP_ADDRESS_INSCRIPTIONS, []string{address}, page, Filters{})
}

////////////////////////////////////////////////////////////////////////////////

// invokeByName is used with catalogue names only, so a miss is a bug.
func (c *Client) invokeByName(ctx context.Context, name string, pathArgs []string, page Page, filters Filters) (*Response, error) {
	ep, ok := LookupEndpoint(name)
	if !ok {
		panic("unisatclient: endpoint missing from catalogue: " + name)
	}
	return c.invoke(ctx, ep, pathArgs, page, filters)
}
