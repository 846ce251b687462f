//go:build integration

package router_test

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/raweer420/CRMBUTECO/internal/config"
	"github.com/raweer420/CRMBUTECO/internal/infra"
	"github.com/raweer420/CRMBUTECO/internal/model"
	"github.com/raweer420/CRMBUTECO/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Suite setup ──────────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	tokens map[string]string // role -> JWT
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("buteco_test"),
		tcPostgres.WithUsername("buteco"),
		tcPostgres.WithPassword("buteco"),
		testcontainers.WithWaitStrategy(
			tcPostgres.BasicWaitStrategies()...,
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		WorkerPoolSize:     1,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	// One user per role, all sharing the same test password
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo123"), 12)
	require.NoError(t, err)
	roles := []string{model.RoleAdmin, model.RoleManager, model.RoleCashier, model.RoleWaiter}
	for _, role := range roles {
		require.NoError(t, db.Create(&model.User{
			Name:         role,
			Email:        fmt.Sprintf("%s@e2e.test", role),
			PasswordHash: string(hash),
			Role:         role,
			Active:       true,
		}).Error)
	}

	srv := httptest.NewServer(router.New(cfg, db, rdb))
	t.Cleanup(srv.Close)

	env := &testEnv{server: srv, tokens: make(map[string]string)}
	for _, role := range roles {
		loginResp := do(t, srv, "POST", "/v1/auth/login",
			jsonBody(t, map[string]string{"email": fmt.Sprintf("%s@e2e.test", role), "password": "segredo123"}),
			"",
		)
		require.Equal(t, http.StatusOK, loginResp.StatusCode)
		var body struct {
			AccessToken string `json:"access_token"`
		}
		decodeJSON(t, loginResp, &body)
		require.NotEmpty(t, body.AccessToken)
		env.tokens[role] = body.AccessToken
	}
	return env
}

type tabPayload struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Status string `json:"status"`
	Items  []struct {
		ID string `json:"id"`
	} `json:"items"`
	Totals struct {
		Subtotal  string `json:"subtotal"`
		Total     string `json:"total"`
		Paid      string `json:"paid"`
		Remaining string `json:"remaining"`
	} `json:"totals"`
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_FullTabCycle(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.tokens[model.RoleAdmin]
	waiter := env.tokens[model.RoleWaiter]
	cashier := env.tokens[model.RoleCashier]

	// 1. Admin creates a stock-controlled product
	prodResp := do(t, env.server, "POST", "/v1/products",
		jsonBody(t, map[string]any{
			"name":           "Cerveja 600ml",
			"category":       "Bebidas",
			"price":          "12.50",
			"controls_stock": true,
		}),
		admin,
	)
	require.Equal(t, http.StatusCreated, prodResp.StatusCode)
	var prod struct {
		ID string `json:"id"`
	}
	decodeJSON(t, prodResp, &prod)

	// 2. Waiter opens a table tab
	tabResp := do(t, env.server, "POST", "/v1/tabs",
		jsonBody(t, map[string]any{"kind": "TABLE", "table_number": 4}),
		waiter,
	)
	require.Equal(t, http.StatusCreated, tabResp.StatusCode)
	var tab tabPayload
	decodeJSON(t, tabResp, &tab)
	assert.Equal(t, "OPEN", tab.Status)
	assert.Regexp(t, `^CMD\d{6}-\d{3}$`, tab.Code)

	// 3. Waiter adds two beers
	itemResp := do(t, env.server, "POST", "/v1/tabs/"+tab.ID+"/items",
		jsonBody(t, map[string]any{"product_id": prod.ID, "quantity": "2"}),
		waiter,
	)
	require.Equal(t, http.StatusOK, itemResp.StatusCode)
	decodeJSON(t, itemResp, &tab)
	assert.Equal(t, "25", tab.Totals.Subtotal)
	assert.Equal(t, "27.5", tab.Totals.Total) // 10% service fee

	// 4. Waiter cannot register payments
	payResp := do(t, env.server, "POST", "/v1/tabs/"+tab.ID+"/payments",
		jsonBody(t, map[string]any{"method": "PIX", "amount": "27.50"}),
		waiter,
	)
	require.Equal(t, http.StatusBadRequest, payResp.StatusCode)
	payResp.Body.Close()

	// 5. Cashier collects full payment — first payment flips OPEN to BILLING
	payResp = do(t, env.server, "POST", "/v1/tabs/"+tab.ID+"/payments",
		jsonBody(t, map[string]any{"method": "PIX", "amount": "27.50"}),
		cashier,
	)
	require.Equal(t, http.StatusOK, payResp.StatusCode)
	decodeJSON(t, payResp, &tab)
	assert.Equal(t, "BILLING", tab.Status)
	assert.Equal(t, "0", tab.Totals.Remaining)

	// 6. Cashier settles
	settleResp := do(t, env.server, "PUT", "/v1/tabs/"+tab.ID+"/status",
		jsonBody(t, map[string]any{"next_status": "PAID"}),
		cashier,
	)
	require.Equal(t, http.StatusOK, settleResp.StatusCode)
	decodeJSON(t, settleResp, &tab)
	assert.Equal(t, "PAID", tab.Status)

	// 7. Settlement posted revenue and a stock OUT movement
	entriesResp := do(t, env.server, "GET", "/v1/finance/entries", nil, admin)
	require.Equal(t, http.StatusOK, entriesResp.StatusCode)
	var entries []struct {
		Amount        string `json:"amount"`
		PaymentMethod string `json:"payment_method"`
		CategoryName  string `json:"category_name"`
	}
	decodeJSON(t, entriesResp, &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, "27.5", entries[0].Amount)
	assert.Equal(t, "PIX", entries[0].PaymentMethod)
	assert.Equal(t, "Vendas", entries[0].CategoryName)

	movResp := do(t, env.server, "GET", "/v1/stock/movements", nil, admin)
	require.Equal(t, http.StatusOK, movResp.StatusCode)
	var movements struct {
		Total int64 `json:"total"`
	}
	decodeJSON(t, movResp, &movements)
	assert.Equal(t, int64(1), movements.Total)
}

func TestE2E_InsufficientPaymentBlocksSettlement(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.tokens[model.RoleAdmin]
	cashier := env.tokens[model.RoleCashier]

	prodResp := do(t, env.server, "POST", "/v1/products",
		jsonBody(t, map[string]any{"name": "Porção de fritas", "category": "Comidas", "price": "30.00"}),
		admin,
	)
	require.Equal(t, http.StatusCreated, prodResp.StatusCode)
	var prod struct {
		ID string `json:"id"`
	}
	decodeJSON(t, prodResp, &prod)

	tabResp := do(t, env.server, "POST", "/v1/tabs", jsonBody(t, map[string]any{"kind": "BAR"}), cashier)
	require.Equal(t, http.StatusCreated, tabResp.StatusCode)
	var tab tabPayload
	decodeJSON(t, tabResp, &tab)

	itemResp := do(t, env.server, "POST", "/v1/tabs/"+tab.ID+"/items",
		jsonBody(t, map[string]any{"product_id": prod.ID, "quantity": "1"}),
		cashier,
	)
	require.Equal(t, http.StatusOK, itemResp.StatusCode)
	itemResp.Body.Close()

	payResp := do(t, env.server, "POST", "/v1/tabs/"+tab.ID+"/payments",
		jsonBody(t, map[string]any{"method": "CASH", "amount": "10.00"}),
		cashier,
	)
	require.Equal(t, http.StatusOK, payResp.StatusCode)
	payResp.Body.Close()

	settleResp := do(t, env.server, "PUT", "/v1/tabs/"+tab.ID+"/status",
		jsonBody(t, map[string]any{"next_status": "PAID"}),
		cashier,
	)
	assert.Equal(t, http.StatusUnprocessableEntity, settleResp.StatusCode)
	settleResp.Body.Close()
}

func TestE2E_AdminReopenUndoesSettlement(t *testing.T) {
	env := setupTestEnv(t)
	admin := env.tokens[model.RoleAdmin]
	cashier := env.tokens[model.RoleCashier]

	prodResp := do(t, env.server, "POST", "/v1/products",
		jsonBody(t, map[string]any{"name": "Caipirinha", "category": "Drinks", "price": "18.00"}),
		admin,
	)
	require.Equal(t, http.StatusCreated, prodResp.StatusCode)
	var prod struct {
		ID string `json:"id"`
	}
	decodeJSON(t, prodResp, &prod)

	tabResp := do(t, env.server, "POST", "/v1/tabs", jsonBody(t, map[string]any{"kind": "BAR"}), cashier)
	var tab tabPayload
	decodeJSON(t, tabResp, &tab)

	do(t, env.server, "POST", "/v1/tabs/"+tab.ID+"/items",
		jsonBody(t, map[string]any{"product_id": prod.ID, "quantity": "1"}), cashier).Body.Close()
	do(t, env.server, "POST", "/v1/tabs/"+tab.ID+"/payments",
		jsonBody(t, map[string]any{"method": "DEBIT", "amount": "19.80"}), cashier).Body.Close()
	settleResp := do(t, env.server, "PUT", "/v1/tabs/"+tab.ID+"/status",
		jsonBody(t, map[string]any{"next_status": "PAID"}), cashier)
	require.Equal(t, http.StatusOK, settleResp.StatusCode)
	settleResp.Body.Close()

	// Cashier cannot reopen
	reopenResp := do(t, env.server, "POST", "/v1/tabs/"+tab.ID+"/reopen", nil, cashier)
	assert.Equal(t, http.StatusForbidden, reopenResp.StatusCode)
	reopenResp.Body.Close()

	// Admin reopens: tab back to BILLING, revenue rows gone
	reopenResp = do(t, env.server, "POST", "/v1/tabs/"+tab.ID+"/reopen", nil, admin)
	require.Equal(t, http.StatusNoContent, reopenResp.StatusCode)
	reopenResp.Body.Close()

	getResp := do(t, env.server, "GET", "/v1/tabs/"+tab.ID, nil, admin)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	decodeJSON(t, getResp, &tab)
	assert.Equal(t, "BILLING", tab.Status)

	entriesResp := do(t, env.server, "GET", "/v1/finance/entries", nil, admin)
	var entries []json.RawMessage
	decodeJSON(t, entriesResp, &entries)
	assert.Empty(t, entries)
}

func TestE2E_CashCloseAndPDF(t *testing.T) {
	env := setupTestEnv(t)
	cashier := env.tokens[model.RoleCashier]

	ccResp := do(t, env.server, "POST", "/v1/finance/cash-closes",
		jsonBody(t, map[string]any{
			"date":    "2026-08-29",
			"counted": map[string]string{"CASH": "0.00"},
		}),
		cashier,
	)
	require.Equal(t, http.StatusCreated, ccResp.StatusCode)
	var cc struct {
		ID string `json:"id"`
	}
	decodeJSON(t, ccResp, &cc)

	// Duplicate close for the same date+shift is rejected
	dupResp := do(t, env.server, "POST", "/v1/finance/cash-closes",
		jsonBody(t, map[string]any{
			"date":    "2026-08-29",
			"counted": map[string]string{},
		}),
		cashier,
	)
	assert.Equal(t, http.StatusBadRequest, dupResp.StatusCode)
	dupResp.Body.Close()

	pdfResp := do(t, env.server, "GET", "/v1/finance/cash-closes/"+cc.ID+"/pdf", nil, cashier)
	require.Equal(t, http.StatusOK, pdfResp.StatusCode)
	defer pdfResp.Body.Close()
	assert.Equal(t, "application/pdf", pdfResp.Header.Get("Content-Type"))
}
