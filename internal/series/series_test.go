package series

import (
	"testing"
	"time"
)

func mustSeries(t *testing.T, times []time.Time, values []float64) TimeSeries {
	t.Helper()
	s, err := New(times, values, nil)
	if err != nil {
		t.Fatalf("构造序列失败: %v", err)
	}
	return s
}

func hourly(start time.Time, n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.Add(time.Duration(i) * time.Hour)
	}
	return out
}

func TestNewLengthMismatch(t *testing.T) {
	if _, err := New(hourly(time.Now(), 3), []float64{1, 2}, nil); err == nil {
		t.Fatal("长度不一致时应返回错误")
	}
}

func TestWindowClosedOpen(t *testing.T) {
	start := time.Date(2010, 5, 29, 0, 0, 0, 0, time.UTC)
	s := mustSeries(t, hourly(start, 24), make([]float64, 24))

	got := s.Window(start.Add(2*time.Hour), start.Add(5*time.Hour))
	if got.Len() != 3 {
		t.Fatalf("闭开区间应包含 3 个点, 实际 %d", got.Len())
	}
	if !got.Times[0].Equal(start.Add(2 * time.Hour)) {
		t.Fatalf("区间起点应被包含, 实际 %s", got.Times[0])
	}
	if got.Times[2].Equal(start.Add(5 * time.Hour)) {
		t.Fatal("区间终点不应被包含")
	}
}

func TestWindowNoOverlap(t *testing.T) {
	start := time.Date(2010, 5, 29, 0, 0, 0, 0, time.UTC)
	s := mustSeries(t, hourly(start, 24), make([]float64, 24))

	got := s.Window(start.AddDate(1, 0, 0), start.AddDate(1, 0, 1))
	if got.Len() != 0 {
		t.Fatalf("无重叠窗口应为空序列, 实际 %d 个点", got.Len())
	}
}

func TestEqualWithin(t *testing.T) {
	start := time.Date(2010, 5, 29, 0, 0, 0, 0, time.UTC)
	a := mustSeries(t, hourly(start, 3), []float64{-12, -30.5, 4})
	b := mustSeries(t, hourly(start.Add(10*time.Second), 3), []float64{-12 * (1 + 1e-9), -30.5, 4})

	if err := a.EqualWithin(b, 1e-6, time.Minute); err != nil {
		t.Fatalf("容差内应判定相等: %v", err)
	}

	c := mustSeries(t, hourly(start, 3), []float64{-12, -30.5, 4.1})
	if err := a.EqualWithin(c, 1e-6, time.Minute); err == nil {
		t.Fatal("超出数值容差应报错")
	}

	d := mustSeries(t, hourly(start.Add(2*time.Minute), 3), []float64{-12, -30.5, 4})
	if err := a.EqualWithin(d, 1e-6, time.Minute); err == nil {
		t.Fatal("超出时间容差应报错")
	}
}
