package metrics

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordPick(t *testing.T) {
	before := testutil.ToFloat64(Picks.WithLabelValues("surprise"))
	RecordPick("surprise")
	RecordPick("surprise")
	gt.Value(t, testutil.ToFloat64(Picks.WithLabelValues("surprise"))-before).Equal(2.0)
}

func TestRecordVisit(t *testing.T) {
	before := testutil.ToFloat64(VisitsRecorded.WithLabelValues("true"))
	RecordVisit(true)
	gt.Value(t, testutil.ToFloat64(VisitsRecorded.WithLabelValues("true"))-before).Equal(1.0)
}

func TestObserveRequest(t *testing.T) {
	ObserveRequest("/guide", 200, 5*time.Millisecond)
	gt.Value(t, testutil.CollectAndCount(HTTPRequestDuration)).NotEqual(0)
}
