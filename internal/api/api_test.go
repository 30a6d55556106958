package api

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/finboard/internal/common"
	"github.com/Veraticus/finboard/internal/model"
	"github.com/Veraticus/finboard/internal/store"
	"github.com/Veraticus/finboard/internal/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = testutil.Now

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, loaded bool) (*Server, *store.Store) {
	t.Helper()
	st := testutil.NewDemoStore(t, loaded)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	srv := NewServer(st,
		WithLogger(common.DiscardLogger()),
		WithClock(func() time.Time { return now }),
		WithBaseContext(ctx),
	)
	return srv, st
}

func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, true)

	rec := do(t, srv, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[map[string]any](t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(8), body["version"])
}

func TestGetState(t *testing.T) {
	srv, _ := newTestServer(t, false)

	rec := do(t, srv, http.MethodGet, "/api/state", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Profile      *model.UserProfile           `json:"profile"`
		Status       map[string]map[string]string `json:"status"`
		Transactions []model.Transaction          `json:"transactions"`
		View         map[string]string            `json:"view"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Nil(t, body.Profile)
	assert.NotNil(t, body.Transactions, "empty lists encode as []")
	assert.Equal(t, "idle", body.Status["savings"]["phase"])
	assert.Equal(t, "date", body.View["sortField"])
	assert.Equal(t, "desc", body.View["sortDirection"])
}

func TestGetOverview(t *testing.T) {
	srv, _ := newTestServer(t, true)

	rec := do(t, srv, http.MethodGet, "/api/overview", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Overview map[string]float64 `json:"overview"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.InDelta(t, 41250, body.Overview["totalBalance"], 1e-9)
	assert.InDelta(t, 3238.75, body.Overview["monthlyChange"], 1e-9)
}

func TestGetTransactions(t *testing.T) {
	srv, _ := newTestServer(t, true)

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "stored view", query: "", wantIDs: []string{"t1", "t2", "t3", "t4", "t5", "t6", "t7"}},
		{name: "filter", query: "?filter=INCOME", wantIDs: []string{"t1", "t5"}},
		{name: "amount asc", query: "?filter=income&sort=amount&direction=asc", wantIDs: []string{"t5", "t1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv, http.MethodGet, "/api/transactions"+tt.query, "")
			require.Equal(t, http.StatusOK, rec.Code)

			var body struct {
				Items []model.Transaction `json:"items"`
				Total int                 `json:"total"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			ids := make([]string, len(body.Items))
			for i, item := range body.Items {
				ids[i] = item.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, 7, body.Total)
		})
	}
}

func TestGetTransactions_BadQuery(t *testing.T) {
	srv, _ := newTestServer(t, true)

	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodGet, "/api/transactions?sort=merchant", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodGet, "/api/transactions?direction=up", "").Code)
}

func TestPutTransactionView(t *testing.T) {
	srv, st := newTestServer(t, true)

	rec := do(t, srv, http.MethodPut, "/api/transactions/view", `{"sortField":"amount","sortDirection":"asc","filter":"food"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, store.TransactionView{
		SortField:     model.SortAmount,
		SortDirection: model.SortAsc,
		Filter:        "food",
	}, st.Snapshot().View)

	// Partial update keeps the other fields.
	rec = do(t, srv, http.MethodPut, "/api/transactions/view", `{"filter":""}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.SortAmount, st.Snapshot().View.SortField)
	assert.Empty(t, st.Snapshot().View.Filter)

	rec = do(t, srv, http.MethodPut, "/api/transactions/view", `{"sortField":"merchant"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid sort field")

	rec = do(t, srv, http.MethodPut, "/api/transactions/view", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPutTransactionView_PublishesOnlyChanges(t *testing.T) {
	srv, st := newTestServer(t, true)
	before := st.Snapshot().Version

	rec := do(t, srv, http.MethodPut, "/api/transactions/view", `{"filter":"food"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, before+1, st.Snapshot().Version)
	assert.Equal(t, store.TransactionView{
		SortField:     model.SortDate,
		SortDirection: model.SortDesc,
		Filter:        "food",
	}, decode[store.TransactionView](t, rec))

	rec = do(t, srv, http.MethodPut, "/api/transactions/view", `{}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, before+1, st.Snapshot().Version)

	rec = do(t, srv, http.MethodPut, "/api/transactions/view", `{"filter":"food","sortField":"date"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, before+1, st.Snapshot().Version)

	// A bad direction rejects the whole request, including the valid field.
	rec = do(t, srv, http.MethodPut, "/api/transactions/view", `{"sortField":"amount","sortDirection":"up"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, model.SortDate, st.Snapshot().View.SortField)
	assert.Equal(t, before+1, st.Snapshot().Version)
}

func TestGetTransactionSummary_DefaultLimit(t *testing.T) {
	srv, _ := newTestServer(t, true)

	rec := do(t, srv, http.MethodGet, "/api/transactions/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[struct {
		TopExpenses []struct {
			Category string `json:"category"`
		} `json:"topExpenses"`
	}](t, rec)
	require.Len(t, body.TopExpenses, 3)
	assert.Equal(t, "Food", body.TopExpenses[2].Category)
}

func TestGetTransactionSummary(t *testing.T) {
	srv, _ := newTestServer(t, true)

	rec := do(t, srv, http.MethodGet, "/api/transactions/summary?limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		TopExpenses []struct {
			Category string  `json:"category"`
			Total    float64 `json:"total"`
		} `json:"topExpenses"`
		Totals struct {
			Income   float64 `json:"income"`
			Expenses float64 `json:"expenses"`
		} `json:"totals"`
		Net float64 `json:"net"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Len(t, body.TopExpenses, 2)
	assert.Equal(t, "Investment", body.TopExpenses[0].Category)
	assert.Equal(t, "Savings", body.TopExpenses[1].Category)
	assert.InDelta(t, 3950, body.Totals.Income, 1e-9)
	assert.InDelta(t, 1180.15, body.Totals.Expenses, 1e-9)
	assert.InDelta(t, 2769.85, body.Net, 1e-9)

	assert.Equal(t, http.StatusBadRequest, do(t, srv, http.MethodGet, "/api/transactions/summary?limit=-1", "").Code)
}

func TestGetSavingsAndInvestments(t *testing.T) {
	srv, _ := newTestServer(t, true)

	rec := do(t, srv, http.MethodGet, "/api/savings", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var savings struct {
		Goals []struct {
			Percent  int `json:"progressPercent"`
			DaysLeft int `json:"daysLeft"`
		} `json:"goals"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &savings))
	require.Len(t, savings.Goals, 3)
	assert.Equal(t, 75, savings.Goals[0].Percent)
	assert.Equal(t, 94, savings.Goals[0].DaysLeft)

	rec = do(t, srv, http.MethodGet, "/api/investments", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var investments struct {
		Allocations []struct {
			Performance string  `json:"performance"`
			Percent     float64 `json:"allocationPercent"`
		} `json:"allocations"`
		PortfolioValue float64 `json:"portfolioValue"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &investments))
	assert.InDelta(t, 31750, investments.PortfolioValue, 1e-9)
	require.Len(t, investments.Allocations, 5)
	assert.Equal(t, "strong-positive", investments.Allocations[0].Performance)
	assert.InDelta(t, 19.685, investments.Allocations[0].Percent, 0.001)
}

func TestPostFetch(t *testing.T) {
	srv, st := newTestServer(t, false)

	rec := do(t, srv, http.MethodPost, "/api/fetch/savings", "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `"category":"savings"`)

	assert.Eventually(t, func() bool {
		return st.Snapshot().SavingsStatus.Phase == store.PhaseSuccess
	}, time.Second, 5*time.Millisecond)

	rec = do(t, srv, http.MethodPost, "/api/fetch/all", "")
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Eventually(t, func() bool {
		snap := st.Snapshot()
		return snap.Profile != nil && len(snap.Investments) == 5 && !snap.Loading()
	}, time.Second, 5*time.Millisecond)

	rec = do(t, srv, http.MethodPost, "/api/fetch/budgets", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown category")
}

func TestCORS(t *testing.T) {
	srv, _ := newTestServer(t, true)

	req := httptest.NewRequest(http.MethodOptions, "/api/state", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestStreamEvents(t *testing.T) {
	srv, st := newTestServer(t, false)

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/api/events", nil)
	require.NoError(t, err)
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	reader := bufio.NewReader(resp.Body)
	readEvent := func() string {
		var data string
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			line = strings.TrimRight(line, "\n")
			if line == "" && data != "" {
				return data
			}
			if strings.HasPrefix(line, "data:") {
				data = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			}
		}
	}

	first := readEvent()
	assert.Contains(t, first, `"version":0`)

	st.SetTransactionFilter("food")

	next := readEvent()
	assert.Contains(t, next, `"filter":"food"`)
	assert.Contains(t, next, `"version":1`)
}
