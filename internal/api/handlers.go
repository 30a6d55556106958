package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Veraticus/finboard/internal/common"
	"github.com/Veraticus/finboard/internal/insights"
	"github.com/Veraticus/finboard/internal/model"
	"github.com/Veraticus/finboard/internal/store"
	"github.com/Veraticus/finboard/internal/tui/viewmodel"
	"github.com/gin-gonic/gin"
)

const defaultTopExpenses = viewmodel.TopExpenseCount

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (s *Server) healthCheck(c *gin.Context) {
	st := s.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "finboard",
		"version": st.Version,
		"loading": st.Loading(),
	})
}

func (s *Server) getState(c *gin.Context) {
	c.JSON(http.StatusOK, newStateResponse(s.store.Snapshot()))
}

func (s *Server) getOverview(c *gin.Context) {
	st := s.store.Snapshot()
	c.JSON(http.StatusOK, overviewResponse{
		Overview: insights.Summarize(st.Profile, st.Transactions, s.now()),
		Profile:  st.UserStatus,
		Activity: st.TransactionsStatus,
	})
}

// getTransactions lists transactions using the stored view. Query
// parameters filter, sort and direction override it for this request only.
func (s *Server) getTransactions(c *gin.Context) {
	st := s.store.Snapshot()
	view := st.View

	if filter, ok := c.GetQuery("filter"); ok {
		view.Filter = filter
	}
	if sort, ok := c.GetQuery("sort"); ok {
		field, err := model.ParseSortField(sort)
		if err != nil {
			badRequest(c, err)
			return
		}
		view.SortField = field
	}
	if direction, ok := c.GetQuery("direction"); ok {
		parsed, err := model.ParseSortDirection(direction)
		if err != nil {
			badRequest(c, err)
			return
		}
		view.SortDirection = parsed
	}

	items := insights.FilterAndSort(st.Transactions, view.Filter, view.SortField, view.SortDirection)
	c.JSON(http.StatusOK, transactionsResponse{
		Items:  items,
		View:   view,
		Total:  len(st.Transactions),
		Status: st.TransactionsStatus,
	})
}

func (s *Server) putTransactionView(c *gin.Context) {
	var req viewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	var (
		field     model.SortField
		direction model.SortDirection
		err       error
	)
	if req.SortField != nil {
		if field, err = model.ParseSortField(*req.SortField); err != nil {
			badRequest(c, err)
			return
		}
	}
	if req.SortDirection != nil {
		if direction, err = model.ParseSortDirection(*req.SortDirection); err != nil {
			badRequest(c, err)
			return
		}
	}

	view := s.store.UpdateTransactionView(func(v *store.TransactionView) {
		if req.SortField != nil {
			v.SortField = field
		}
		if req.SortDirection != nil {
			v.SortDirection = direction
		}
		if req.Filter != nil {
			v.Filter = *req.Filter
		}
	})
	c.JSON(http.StatusOK, view)
}

func (s *Server) getTransactionSummary(c *gin.Context) {
	limit := defaultTopExpenses
	if raw, ok := c.GetQuery("limit"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			badRequest(c, errors.New("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	st := s.store.Snapshot()
	totals := insights.IncomeAndExpenses(st.Transactions)
	c.JSON(http.StatusOK, summaryResponse{
		Totals:        totals,
		Net:           totals.Net(),
		MonthlyChange: insights.MonthlyNetChange(st.Transactions, s.now()),
		Categories:    insights.CategoryTotals(st.Transactions),
		TopExpenses:   insights.TopExpenses(st.Transactions, limit),
		Status:        st.TransactionsStatus,
	})
}

func (s *Server) getSavings(c *gin.Context) {
	st := s.store.Snapshot()
	c.JSON(http.StatusOK, savingsResponse{
		Goals:  insights.Progress(st.Savings, s.now()),
		Status: st.SavingsStatus,
	})
}

func (s *Server) getInvestments(c *gin.Context) {
	st := s.store.Snapshot()
	c.JSON(http.StatusOK, investmentsResponse{
		PortfolioValue: insights.PortfolioValue(st.Investments),
		Allocations:    insights.Allocations(st.Investments),
		Status:         st.InvestmentsStatus,
	})
}

// postFetch starts a background fetch of one category, or of every
// category when the name is "all".
func (s *Server) postFetch(c *gin.Context) {
	name := c.Param("category")

	if name == "all" {
		go s.store.FetchAll(s.base)
		c.JSON(http.StatusAccepted, gin.H{"category": "all", "status": "accepted"})
		return
	}

	category, err := model.ParseCategory(name)
	if err != nil {
		if errors.Is(err, common.ErrUnknownCategory) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		badRequest(c, err)
		return
	}

	go s.store.Retry(s.base, category)
	c.JSON(http.StatusAccepted, gin.H{"category": category, "status": "accepted"})
}

func categoryStatuses(st store.State) map[model.Category]store.Status {
	out := make(map[model.Category]store.Status, len(model.Categories))
	for _, c := range model.Categories {
		out[c] = st.Status(c)
	}
	return out
}
