package cdfio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ctessum/cdf"
)

// writeFixture builds a small NetCDF-classic file with a time axis "Epoch"
// (CDF_EPOCH encoding) and one data variable "X" carrying the ISTP attributes
// the extractors contract on.
func writeFixture(t *testing.T, path string, epochs, values []float64) {
	t.Helper()

	h := cdf.NewHeader([]string{"record"}, []int{len(epochs)})
	h.AddVariable("Epoch", []string{"record"}, []float64{0})
	h.AddVariable("X", []string{"record"}, []float64{0})
	h.AddAttribute("X", "CATDESC", "test")
	h.AddAttribute("X", "UNITS", "none")
	h.AddAttribute("X", "DEPEND_0", "Epoch")
	h.Define()
	for _, err := range h.Check() {
		t.Fatalf("夹具文件头不合法: %v", err)
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("创建夹具文件失败: %v", err)
	}
	defer f.Close()

	cf, err := cdf.Create(f, h)
	if err != nil {
		t.Fatalf("写入夹具文件头失败: %v", err)
	}
	w := cf.Writer("Epoch", []int{0}, []int{len(epochs)})
	if _, err := w.Write(epochs); err != nil {
		t.Fatalf("写入时间轴失败: %v", err)
	}
	w = cf.Writer("X", []int{0}, []int{len(values)})
	if _, err := w.Write(values); err != nil {
		t.Fatalf("写入数据变量失败: %v", err)
	}
	if err := cdf.UpdateNumRecs(f); err != nil {
		t.Fatalf("更新记录数失败: %v", err)
	}
}

func fixturePath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.cdf")
	// Five hourly records starting 2010-05-29T00:00 UTC, CDF_EPOCH millis.
	base := 63442310400000.0
	epochs := make([]float64, 5)
	for i := range epochs {
		epochs[i] = base + float64(i)*3600_000
	}
	writeFixture(t, path, epochs, []float64{-12, -18.5, -30, -25.25, -9})
	return path
}

func TestExtractMetadata(t *testing.T) {
	path := fixturePath(t)

	for _, backend := range Backends() {
		r, err := backend.Open(path)
		if err != nil {
			t.Fatalf("后端 %s 打开夹具失败: %v", backend.Name, err)
		}

		s, err := Extract(r, "X", "Epoch")
		if cerr := r.Close(); cerr != nil {
			t.Fatalf("后端 %s 关闭失败: %v", backend.Name, cerr)
		}
		if err != nil {
			t.Fatalf("后端 %s 抽取失败: %v", backend.Name, err)
		}

		if s.Meta["description"] != "test" {
			t.Fatalf("后端 %s description 期望 %q, 实际 %q", backend.Name, "test", s.Meta["description"])
		}
		if s.Meta["units"] != "none" {
			t.Fatalf("后端 %s units 期望 %q, 实际 %q", backend.Name, "none", s.Meta["units"])
		}
		if s.Len() != 5 {
			t.Fatalf("后端 %s 期望 5 个点, 实际 %d", backend.Name, s.Len())
		}
		want := time.Date(2010, 5, 29, 0, 0, 0, 0, time.UTC)
		if !s.Times[0].Equal(want) {
			t.Fatalf("后端 %s 首个时间戳期望 %s, 实际 %s", backend.Name, want, s.Times[0])
		}
	}
}

func TestBackendsAgree(t *testing.T) {
	path := fixturePath(t)
	backends := Backends()

	ra, err := backends[0].Open(path)
	if err != nil {
		t.Fatalf("classic 后端打开失败: %v", err)
	}
	defer ra.Close()
	rb, err := backends[1].Open(path)
	if err != nil {
		t.Fatalf("native 后端打开失败: %v", err)
	}
	defer rb.Close()

	a, err := Extract(ra, "X", "Epoch")
	if err != nil {
		t.Fatalf("classic 抽取失败: %v", err)
	}
	b, err := Extract(rb, "X", "Epoch")
	if err != nil {
		t.Fatalf("native 抽取失败: %v", err)
	}

	if err := a.EqualWithin(b, 1e-6, time.Minute); err != nil {
		t.Fatalf("两个后端读取同一文件应一致: %v", err)
	}
}

func TestExtractUnknownVariable(t *testing.T) {
	path := fixturePath(t)

	for _, backend := range Backends() {
		r, err := backend.Open(path)
		if err != nil {
			t.Fatalf("后端 %s 打开夹具失败: %v", backend.Name, err)
		}
		if _, err := Extract(r, "NOPE", "Epoch"); err == nil {
			t.Fatalf("后端 %s 读取不存在的变量应报错", backend.Name)
		}
		r.Close()
	}
}
