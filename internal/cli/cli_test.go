package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"

	"github.com/nulln0ne/suilipse/internal/sui"
	"github.com/nulln0ne/suilipse/pkg/amm"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestMathCommands(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"sqrt", "16"}, "4"},
		{[]string{"sqrt", "18446744073709551615"}, "4294967295"},
		{[]string{"quote", "--decimals", "0", "3", "10", "7"}, "21"},
		{[]string{"quote", "--decimals", "0", "--precise", "3", "10", "7"}, "23"},
		{[]string{"swap", "--decimals", "0", "1000", "1000000", "1000000000"}, "996006"},
		{[]string{"swap", "--fee", "10000", "1", "1", "1"}, "0"},
		{[]string{"mint", "--decimals", "0", "100", "100", "10", "10", "1000"}, "100"},
		{[]string{"withdraw", "--decimals", "0", "1000", "2000", "100", "1000"}, "100 200"},
		{[]string{"withdraw", "1", "2", "100", "1000"}, "0.1 0.2"},
		{[]string{"seed", "1", "1000"}, "31622776601"},
	}
	for _, tc := range cases {
		got, err := run(t, tc.args...)
		require.NoError(t, err, tc.args)
		require.Equal(t, tc.want, got, tc.args)
	}
}

func TestMathCommandErrors(t *testing.T) {
	_, err := run(t, "quote", "0", "10", "7")
	require.ErrorIs(t, err, amm.ErrDivisionByZero)

	_, err = run(t, "mint", "100", "100", "10", "10", "abc")
	require.ErrorIs(t, err, amm.ErrInvalidAmount)

	_, err = run(t, "swap", "0.0000000001", "1", "1")
	require.ErrorIs(t, err, amm.ErrPrecision)

	_, err = run(t, "swap", "--fee", "10001", "1", "1", "1")
	require.ErrorIs(t, err, amm.ErrInvalidFee)

	_, err = run(t, "withdraw", "1", "1", "1", "0")
	require.ErrorIs(t, err, amm.ErrDivisionByZero)

	_, err = run(t, "sqrt")
	require.Error(t, err)
}

type fakeSui struct {
	objects map[string]string
}

func (f *fakeSui) GetObject(ctx context.Context, id string, _ *sui.ObjectOptions) (json.RawMessage, error) {
	if v, ok := f.objects[id]; ok {
		return json.RawMessage(v), nil
	}
	return json.RawMessage(`{"error":{"code":"notExists"}}`), nil
}

func TestPoolCommand(t *testing.T) {
	srv := gethrpc.NewServer()
	require.NoError(t, srv.RegisterName("sui", &fakeSui{objects: map[string]string{
		"0xabc": `{"data":{"content":{"fields":{"id":{"id":"0xabc"},"name":"SUI-JRK","symbol":"SUI-JRK-LP",` +
			`"reserve_x":"10000000","reserve_y":"100000000","lp_supply":"31622776","fee_percentage":"30"}}}}`,
	}}))
	ts := httptest.NewServer(srv)
	defer ts.Close()
	defer srv.Stop()

	out, err := run(t, "pool", "--rpc-url", ts.URL, "0xabc")
	require.NoError(t, err)

	var view poolView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	require.Equal(t, poolView{
		ID:       "0xabc",
		Name:     "SUI-JRK",
		Symbol:   "SUI-JRK-LP",
		ReserveX: "0.01",
		ReserveY: "0.1",
		LPSupply: 31_622_776,
		FeeBps:   30,
	}, view)

	_, err = run(t, "pool", "--rpc-url", ts.URL, "0x404")
	require.ErrorIs(t, err, sui.ErrObjectNotFound)
}
