package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordLogin(t *testing.T) {
	before := testutil.ToFloat64(LoginAttempts.WithLabelValues(OutcomeInvalid))
	RecordLogin(OutcomeInvalid)
	assert.Equal(t, before+1, testutil.ToFloat64(LoginAttempts.WithLabelValues(OutcomeInvalid)))
}

func TestRecordRender(t *testing.T) {
	before := testutil.ToFloat64(ViewRenders.WithLabelValues("analytics", "true"))
	RecordRender("analytics", true)
	assert.Equal(t, before+1, testutil.ToFloat64(ViewRenders.WithLabelValues("analytics", "true")))
}

func TestRecordKVOperation(t *testing.T) {
	okBefore := testutil.ToFloat64(KVStoreOperations.WithLabelValues("memory", "get", "ok"))
	errBefore := testutil.ToFloat64(KVStoreOperations.WithLabelValues("memory", "get", "error"))

	RecordKVOperation("memory", "get", nil, time.Now())
	RecordKVOperation("memory", "get", errors.New("boom"), time.Now())

	assert.Equal(t, okBefore+1, testutil.ToFloat64(KVStoreOperations.WithLabelValues("memory", "get", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(KVStoreOperations.WithLabelValues("memory", "get", "error")))
}

func TestSetActiveShells(t *testing.T) {
	SetActiveShells(3)
	assert.Equal(t, float64(3), testutil.ToFloat64(ActiveShells))
}
