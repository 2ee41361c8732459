package store

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metricsMiddleware struct {
	next Store

	opDurationSeconds *prometheus.HistogramVec
	listsCount        prometheus.Gauge
}

func (m *metricsMiddleware) Keys(ctx context.Context) []string {
	st := time.Now()

	keys := m.next.Keys(ctx)

	m.observe("keys", st, nil)

	return keys
}

func (m *metricsMiddleware) ListCount() int {
	return m.next.ListCount()
}

func (m *metricsMiddleware) Snapshot(ctx context.Context, key string) ([]string, uint64, error) {
	st := time.Now()

	values, rev, err := m.next.Snapshot(ctx, key)

	m.observe("snapshot", st, err)

	return values, rev, err
}

func (m *metricsMiddleware) Equal(ctx context.Context, a, b string) (bool, error) {
	st := time.Now()

	eq, err := m.next.Equal(ctx, a, b)

	m.observe("equal", st, err)

	return eq, err
}

func (m *metricsMiddleware) Compare(ctx context.Context, a, b string) (int, error) {
	st := time.Now()

	res, err := m.next.Compare(ctx, a, b)

	m.observe("compare", st, err)

	return res, err
}

func (m *metricsMiddleware) Replace(ctx context.Context, key string, values []string) uint64 {
	st := time.Now()

	rev := m.next.Replace(ctx, key, values)

	m.observe("replace", st, nil)

	return rev
}

func (m *metricsMiddleware) Delete(ctx context.Context, key string) error {
	st := time.Now()

	err := m.next.Delete(ctx, key)

	m.observe("delete", st, err)

	return err
}

func (m *metricsMiddleware) Clear(ctx context.Context, key string) error {
	st := time.Now()

	err := m.next.Clear(ctx, key)

	m.observe("clear", st, err)

	return err
}

func (m *metricsMiddleware) PushFront(ctx context.Context, key, value string) int {
	st := time.Now()

	length := m.next.PushFront(ctx, key, value)

	m.observe("push_front", st, nil)

	return length
}

func (m *metricsMiddleware) PopFront(ctx context.Context, key string) (string, error) {
	st := time.Now()

	v, err := m.next.PopFront(ctx, key)

	m.observe("pop_front", st, err)

	return v, err
}

func (m *metricsMiddleware) InsertAfter(ctx context.Context, key string, after int, value string) (int, error) {
	st := time.Now()

	length, err := m.next.InsertAfter(ctx, key, after, value)

	m.observe("insert_after", st, err)

	return length, err
}

func (m *metricsMiddleware) EraseAfter(ctx context.Context, key string, after int) (string, error) {
	st := time.Now()

	v, err := m.next.EraseAfter(ctx, key, after)

	m.observe("erase_after", st, err)

	return v, err
}

func (m *metricsMiddleware) Swap(ctx context.Context, a, b string) error {
	st := time.Now()

	err := m.next.Swap(ctx, a, b)

	m.observe("swap", st, err)

	return err
}

func (m *metricsMiddleware) Copy(ctx context.Context, dst, src string) error {
	st := time.Now()

	err := m.next.Copy(ctx, dst, src)

	m.observe("copy", st, err)

	return err
}

func (m *metricsMiddleware) Export(ctx context.Context) map[string][]string {
	st := time.Now()

	data := m.next.Export(ctx)

	m.observe("export", st, nil)

	return data
}

func (m *metricsMiddleware) Restore(ctx context.Context, data map[string][]string) {
	st := time.Now()

	m.next.Restore(ctx, data)

	m.observe("restore", st, nil)
}

func (m *metricsMiddleware) observe(op string, st time.Time, err error) {
	m.opDurationSeconds.WithLabelValues(op, strconv.FormatBool(err != nil)).Observe(time.Since(st).Seconds())
	m.listsCount.Set(float64(m.next.ListCount()))
}

func NewMetricsMiddleware(next Store) Store {
	opDurationSeconds := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "listd",
		Subsystem: "store",
		Name:      "op_duration_seconds",
		Help:      "Store operations histogram in seconds",
	}, []string{"op", "error"})

	listsCount := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "listd",
		Subsystem: "store",
		Name:      "lists_count",
		Help:      "Number of lists currently held",
	})

	prometheus.MustRegister(opDurationSeconds, listsCount)

	return &metricsMiddleware{
		next:              next,
		opDurationSeconds: opDurationSeconds,
		listsCount:        listsCount,
	}
}
