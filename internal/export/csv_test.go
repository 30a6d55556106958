package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/Veraticus/finboard/internal/insights"
	"github.com/Veraticus/finboard/internal/model"
	"github.com/Veraticus/finboard/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestWriteCSV(t *testing.T) {
	txns := insights.FilterAndSort(source.Demo(now).Transactions, "income", model.SortAmount, model.SortDesc)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, txns))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		Header,
		{"t1", "2024-03-15", "Salary Deposit", "Income", "deposit", "3200.00"},
		{"t5", "2024-03-02", "Freelance Payment", "Income", "deposit", "750.00"},
	}, records)
}

func TestWriteCSV_QuotesFields(t *testing.T) {
	txns := []model.Transaction{{
		ID:          "x1",
		Date:        now,
		Description: `Dinner, "Chez Nous"`,
		Category:    "Dining",
		Type:        model.TransactionWithdrawal,
		Amount:      68.9,
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, txns))
	assert.Contains(t, buf.String(), `x1,2024-03-15,"Dinner, ""Chez Nous""",Dining,withdrawal,68.90`)
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "id,date,description,category,type,amount\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteCSV_WriterError(t *testing.T) {
	err := WriteCSV(failingWriter{}, source.Demo(now).Transactions)
	assert.ErrorContains(t, err, "disk full")
}
