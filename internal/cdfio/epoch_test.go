package cdfio

import (
	"errors"
	"testing"
	"time"
)

func TestEpochToTime(t *testing.T) {
	// 2010-01-01T00:00:00 UTC in CDF_EPOCH milliseconds.
	got := EpochToTime(63429523200000.0)
	want := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("CDF_EPOCH 转换错误: 期望 %s, 实际 %s", want, got)
	}
}

func TestTT2000ToTime(t *testing.T) {
	// 2010-01-01T00:00:00 UTC in TT2000 nanoseconds (TAI-UTC was 34s).
	got := TT2000ToTime(315576066184000000)
	want := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("TT2000 转换错误: 期望 %s, 实际 %s", want, got)
	}

	// Zero point maps to 2000-01-01T11:58:55.816 UTC.
	got = TT2000ToTime(0)
	want = time.Date(2000, 1, 1, 11, 58, 55, 816000000, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("TT2000 零点错误: 期望 %s, 实际 %s", want, got)
	}
}

func TestDecodeEpochsDetectsEncoding(t *testing.T) {
	ts, err := DecodeEpochs([]float64{63429523200000.0})
	if err != nil {
		t.Fatalf("float64 应按 CDF_EPOCH 解码: %v", err)
	}
	if len(ts) != 1 || ts[0].Year() != 2010 {
		t.Fatalf("解码结果异常: %v", ts)
	}

	ts, err = DecodeEpochs([]int64{315576066184000000})
	if err != nil {
		t.Fatalf("int64 应按 TT2000 解码: %v", err)
	}
	if len(ts) != 1 || ts[0].Year() != 2010 {
		t.Fatalf("解码结果异常: %v", ts)
	}
}

func TestDecodeEpochsUnknownEncoding(t *testing.T) {
	_, err := DecodeEpochs([]string{"2010-01-01"})
	if !errors.Is(err, ErrUnknownEpoch) {
		t.Fatalf("未知编码应返回 ErrUnknownEpoch, 实际 %v", err)
	}
}
