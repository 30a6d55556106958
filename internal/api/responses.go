package api

import (
	"github.com/Veraticus/finboard/internal/insights"
	"github.com/Veraticus/finboard/internal/model"
	"github.com/Veraticus/finboard/internal/store"
)

type stateResponse struct {
	Profile      *model.UserProfile              `json:"profile"`
	Status       map[model.Category]store.Status `json:"status"`
	Transactions []model.Transaction             `json:"transactions"`
	Savings      []model.SavingsGoal             `json:"savings"`
	Investments  []model.Investment              `json:"investments"`
	View         store.TransactionView           `json:"view"`
	Version      uint64                          `json:"version"`
	Loading      bool                            `json:"loading"`
}

func newStateResponse(st store.State) stateResponse {
	return stateResponse{
		Profile:      st.Profile,
		Status:       categoryStatuses(st),
		Transactions: nonNil(st.Transactions),
		Savings:      nonNil(st.Savings),
		Investments:  nonNil(st.Investments),
		View:         st.View,
		Version:      st.Version,
		Loading:      st.Loading(),
	}
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

type overviewResponse struct {
	Overview insights.Overview `json:"overview"`
	Profile  store.Status      `json:"profileStatus"`
	Activity store.Status      `json:"transactionsStatus"`
}

type transactionsResponse struct {
	Items  []model.Transaction   `json:"items"`
	View   store.TransactionView `json:"view"`
	Status store.Status          `json:"status"`
	Total  int                   `json:"total"`
}

type viewRequest struct {
	SortField     *string `json:"sortField"`
	SortDirection *string `json:"sortDirection"`
	Filter        *string `json:"filter"`
}

type summaryResponse struct {
	Categories    []insights.CategoryTotal `json:"categories"`
	TopExpenses   []insights.CategoryTotal `json:"topExpenses"`
	Totals        insights.Totals          `json:"totals"`
	Status        store.Status             `json:"status"`
	Net           float64                  `json:"net"`
	MonthlyChange float64                  `json:"monthlyChange"`
}

type savingsResponse struct {
	Goals  []insights.GoalProgress `json:"goals"`
	Status store.Status            `json:"status"`
}

type investmentsResponse struct {
	Allocations    []insights.Allocation `json:"allocations"`
	Status         store.Status          `json:"status"`
	PortfolioValue float64               `json:"portfolioValue"`
}
