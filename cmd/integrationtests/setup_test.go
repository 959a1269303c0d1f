package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"auction-settlement/internal/bank"
	"auction-settlement/internal/clock"
	"auction-settlement/internal/escrow"
	model "auction-settlement/internal/models"
	"auction-settlement/internal/registry"
	"auction-settlement/internal/server"
	"auction-settlement/internal/storage"
	"auction-settlement/internal/trading"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// testEnv bundles the full stack behind the router so scenarios can control
// time and inspect balances directly.
type testEnv struct {
	router *gin.Engine
	clock  *clock.Manual
	bank   *bank.MemoryBank
	titles *registry.MemoryRegistry
	store  *storage.Store
}

// SetupTestEnv initializes the router over in-memory collaborators and an
// in-memory SQLite store for integration testing.
func SetupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := storage.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	clk := clock.NewManual(testStart)
	accounts := bank.NewMemoryBank()
	titles := registry.NewMemoryRegistry()
	ledger := escrow.NewLedger(accounts, clk, 0)

	service := trading.NewService(ledger, accounts, titles, store, store, clk, trading.Options{
		SettlementWindow: 24 * time.Hour,
		MinListingLead:   time.Second,
		MaxListingLead:   30 * 24 * time.Hour,
	})

	return &testEnv{
		router: server.SetupRouter(service, store),
		clock:  clk,
		bank:   accounts,
		titles: titles,
		store:  store,
	}
}

// seedAccount funds an account for bidding
func (env *testEnv) seedAccount(account model.AccountID, balance uint64) {
	env.bank.Deposit(account, balance)
}

// seedItem registers an item with its identity and owner
func (env *testEnv) seedItem(item model.ItemID, collection, name string, owner model.AccountID) {
	env.titles.Register(item, collection, name, owner)
}

// ExecuteRequestAndParse executes an HTTP request on the router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
	}
	return resp, w
}
