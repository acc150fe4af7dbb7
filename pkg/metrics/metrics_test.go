package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/debts", "200"))

	RecordHTTPRequest(http.MethodGet, "/api/debts", http.StatusOK, 15*time.Millisecond)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/debts", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordTransitions(t *testing.T) {
	debtBefore := testutil.ToFloat64(DebtTransitions.WithLabelValues("accept_creation"))
	opBefore := testutil.ToFloat64(OperationTransitions.WithLabelValues("accept"))

	RecordDebtTransition("accept_creation")
	RecordOperationTransition("accept")
	RecordOperationTransition("accept")

	assert.Equal(t, debtBefore+1, testutil.ToFloat64(DebtTransitions.WithLabelValues("accept_creation")))
	assert.Equal(t, opBefore+2, testutil.ToFloat64(OperationTransitions.WithLabelValues("accept")))
}
