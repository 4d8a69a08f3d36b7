// Package sui reads pool objects from a Sui fullnode over JSON-RPC.
package sui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/tidwall/gjson"

	"github.com/nulln0ne/suilipse/pkg/amm"
)

var (
	// ErrObjectNotFound is returned when the fullnode reports no object for an id.
	ErrObjectNotFound = errors.New("sui: object not found")

	// ErrNotPool is returned when an object lacks the fields of a pool.
	ErrNotPool = errors.New("sui: object is not a pool")
)

// ObjectOptions selects which parts of an object sui_getObject returns.
type ObjectOptions struct {
	ShowType    bool `json:"showType"`
	ShowContent bool `json:"showContent"`
}

// Client wraps a JSON-RPC connection to a Sui fullnode.
type Client struct {
	rpc *gethrpc.Client
}

// Dial connects to the fullnode at url, giving up after 15 seconds.
func Dial(ctx context.Context, url string) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	c, err := gethrpc.DialContext(ctx, url)
	if err != nil {
		return nil, err
	}
	return NewClient(c), nil
}

// NewClient wraps an existing RPC client.
func NewClient(c *gethrpc.Client) *Client {
	return &Client{rpc: c}
}

func (c *Client) Close() {
	c.rpc.Close()
}

// GetPool fetches the pool object with the given id and decodes its fields.
func (c *Client) GetPool(ctx context.Context, id string) (amm.Pool, error) {
	var raw json.RawMessage
	opts := ObjectOptions{ShowType: true, ShowContent: true}
	if err := c.rpc.CallContext(ctx, &raw, "sui_getObject", id, opts); err != nil {
		return amm.Pool{}, fmt.Errorf("sui_getObject %s: %w", id, err)
	}
	return parsePool(id, raw)
}

// parsePool accepts both the current response layout (data.content.fields)
// and the early devnet one (details.data.fields, status "Exists").
func parsePool(id string, raw []byte) (amm.Pool, error) {
	res := gjson.ParseBytes(raw)

	if res.Get("error").Exists() {
		return amm.Pool{}, fmt.Errorf("%w: %s (%s)", ErrObjectNotFound, id, res.Get("error.code").String())
	}
	if status := res.Get("status"); status.Exists() && status.String() != "Exists" {
		return amm.Pool{}, fmt.Errorf("%w: %s (%s)", ErrObjectNotFound, id, status.String())
	}

	fields := res.Get("data.content.fields")
	if !fields.Exists() {
		fields = res.Get("details.data.fields")
	}
	if !fields.Exists() {
		return amm.Pool{}, fmt.Errorf("%w: %s has no content", ErrNotPool, id)
	}

	var amounts [4]uint64
	for i, key := range []string{"reserve_x", "reserve_y", "lp_supply", "fee_percentage"} {
		v, err := parseU64(fields.Get(key))
		if err != nil {
			return amm.Pool{}, fmt.Errorf("%w: %s field %s: %v", ErrNotPool, id, key, err)
		}
		amounts[i] = v
	}

	objectID := fields.Get("id.id").String()
	if objectID == "" {
		objectID = id
	}

	return amm.Pool{
		ID:       objectID,
		Name:     fields.Get("name").String(),
		Symbol:   fields.Get("symbol").String(),
		ReserveX: amounts[0],
		ReserveY: amounts[1],
		LPSupply: amounts[2],
		Fee:      amm.Fee(amounts[3]),
	}, nil
}

// parseU64 decodes a Move u64, which the fullnode renders as a JSON string
// and older nodes as a number. Anything else, including values that do not
// fit in 64 bits, is rejected.
func parseU64(v gjson.Result) (uint64, error) {
	switch v.Type {
	case gjson.String:
		return strconv.ParseUint(v.String(), 10, 64)
	case gjson.Number:
		return strconv.ParseUint(v.Raw, 10, 64)
	case gjson.Null:
		if !v.Exists() {
			return 0, errors.New("missing")
		}
	}
	return 0, fmt.Errorf("unexpected %s value %s", v.Type, v.Raw)
}
