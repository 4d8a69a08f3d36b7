package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nulln0ne/suilipse/internal/metrics"
	"github.com/nulln0ne/suilipse/internal/service"
	"github.com/nulln0ne/suilipse/internal/sui"
	"github.com/nulln0ne/suilipse/pkg/amm"
)

type fakeReader struct {
	pools map[string]amm.Pool
	err   error
}

func (f *fakeReader) GetPool(ctx context.Context, id string) (amm.Pool, error) {
	if f.err != nil {
		return amm.Pool{}, f.err
	}
	p, ok := f.pools[id]
	if !ok {
		return amm.Pool{}, sui.ErrObjectNotFound
	}
	return p, nil
}

func newTestApp(t *testing.T, r service.PoolReader) *fiber.App {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewPoolService(logger, r)
	h := NewPoolHandler(logger, svc)

	app := fiber.New()
	h.Register(app)
	return app
}

func testPools() *fakeReader {
	return &fakeReader{pools: map[string]amm.Pool{
		"0xabc": {ID: "0xabc", Name: "SUI-JRK", Symbol: "SUI-JRK-LP", ReserveX: 1_000_000, ReserveY: 2_000_000, LPSupply: 1_414_213, Fee: 30},
		"0xeee": {ID: "0xeee", Fee: 30},
		"0xbad": {ID: "0xbad", ReserveX: 10, ReserveY: 10, LPSupply: 10, Fee: 20_000},
	}}
}

func doGet(t *testing.T, app *fiber.App, target string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	defer resp.Body.Close()

	body := map[string]any{}
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
	}
	return resp.StatusCode, body
}

func TestPoolHandler_Pool(t *testing.T) {
	app := newTestApp(t, testPools())

	status, body := doGet(t, app, "/pools/0xabc")
	if status != http.StatusOK {
		t.Fatalf("unexpected status: %d", status)
	}
	if body["reserve_x"] != "1000000" || body["reserve_y"] != "2000000" || body["lp_supply"] != "1414213" {
		t.Fatalf("unexpected body: %v", body)
	}

	if status, _ := doGet(t, app, "/pools/0x404"); status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
}

func TestPoolHandler_Swap(t *testing.T) {
	app := newTestApp(t, testPools())

	status, body := doGet(t, app, "/pools/0xabc/swap?side=x&amount=1000")
	if status != http.StatusOK {
		t.Fatalf("unexpected status: %d", status)
	}
	want, _ := amm.GetInput(1_000, 1_000_000, 2_000_000, 30)
	if body["amount_out"] != formatUint(want) || body["side"] != "x" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestPoolHandler_DepositWithdrawQuote(t *testing.T) {
	app := newTestApp(t, testPools())

	status, body := doGet(t, app, "/pools/0xeee/deposit?x=1000000&y=1000000000")
	if status != http.StatusOK || body["lp"] != "31622776" {
		t.Fatalf("deposit: status %d body %v", status, body)
	}

	status, body = doGet(t, app, "/pools/0xabc/withdraw?lp=141421")
	if status != http.StatusOK {
		t.Fatalf("withdraw: status %d", status)
	}
	x, y, _ := amm.WithdrawLiquidity(1_000_000, 2_000_000, 141_421, 1_414_213)
	if body["x"] != formatUint(x) || body["y"] != formatUint(y) {
		t.Fatalf("withdraw: unexpected body %v", body)
	}

	status, body = doGet(t, app, "/pools/0xabc/quote?side=y&amount=1000&precise=true")
	if status != http.StatusOK || body["quote"] != "500" || body["precise"] != true {
		t.Fatalf("quote: status %d body %v", status, body)
	}

	status, body = doGet(t, app, "/pools/0xabc/quote?side=y&amount=1000")
	if status != http.StatusOK || body["quote"] != "0" {
		t.Fatalf("literal quote: status %d body %v", status, body)
	}
}

func TestPoolHandler_Validation(t *testing.T) {
	app := newTestApp(t, testPools())

	cases := map[string]int{
		"/pools/0xabc/swap":                   http.StatusBadRequest,
		"/pools/0xabc/swap?side=z&amount=1":   http.StatusBadRequest,
		"/pools/0xabc/swap?side=x&amount=abc": http.StatusBadRequest,
		"/pools/0xabc/swap?side=x&amount=-5":  http.StatusBadRequest,
		"/pools/0xabc/swap?side=x&amount=0":   http.StatusBadRequest,
		"/pools/0xeee/swap?side=x&amount=1":   http.StatusBadRequest,
		"/pools/0xabc/withdraw?lp=99999999":   http.StatusBadRequest,
		"/pools/0xabc/deposit?x=0&y=1":        http.StatusBadRequest,
		"/pools/0xabc/swap?side=x&amount=10":  http.StatusOK,
		"/pools/0xbad/swap?side=x&amount=1":   http.StatusUnprocessableEntity,
		"/pools/0x404/quote?side=x&amount=1":  http.StatusNotFound,
		"/pools/0xabc/quote?side=x&amount=0":  http.StatusBadRequest,
	}
	cases["/pools/0xabc/swap?side=x&amount="+strings.Repeat("9", 25)] = http.StatusBadRequest

	for target, want := range cases {
		if status, _ := doGet(t, app, target); status != want {
			t.Errorf("%s: got status %d want %d", target, status, want)
		}
	}
}

func TestPoolHandler_ReaderFailure(t *testing.T) {
	app := newTestApp(t, &fakeReader{err: errors.New("connection refused")})

	if status, _ := doGet(t, app, "/pools/0xabc/swap?side=x&amount=1"); status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.Estimates.WithLabelValues("swap", "ok").Inc()

	app := fiber.New()
	app.Get("/metrics", Metrics(reg))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), `suilipse_estimates_total{op="swap",outcome="ok"} 1`) {
		t.Fatalf("unexpected metrics response %d: %s", resp.StatusCode, body)
	}
}
