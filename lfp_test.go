package lfp

import (
	"math"
	"testing"

	"lfp/electrode"
	"lfp/types"
)

// TestRecordTrial 测试根入口: 一次调用完成 几何展开→构建→步进→终结,
// 结果与点源近似的闭式解一致。
func TestRecordTrial(t *testing.T) {
	arr, err := electrode.NewAt(types.Vec3{0, 0, 20}, 0.3, types.MethodPSA, 0.5)
	if err != nil {
		t.Fatalf("NewAt returned error: %v", err)
	}
	secs := []types.Section{
		{Start: types.Vec3{0, 0, -0.5}, End: types.Vec3{0, 0, 0.5}, L: 1, Nseg: 1},
	}
	fn := func(tm float64, imem []float64) { imem[0] = 1 }

	if err := Record(arr, secs, fn, 0.025, 0.025); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if arr.NTrials() != 1 || arr.NSamples() != 2 {
		t.Fatalf("Expected (1 trial, 2 samples), got (%d, %d)", arr.NTrials(), arr.NSamples())
	}
	// 分段中心在原点, 电极距离 20 µm
	want := 1000 / (4 * math.Pi * 0.3 * 20)
	for si, v := range arr.Voltages()[0][0] {
		if math.Abs(v-want) > 1e-9 {
			t.Errorf("Sample %d: expected %v µV, got %v", si, want, v)
		}
	}

	// 第二个试次共享时间序列
	if err := Record(arr, secs, fn, 0.025, 0.025); err != nil {
		t.Fatalf("Second Record returned error: %v", err)
	}
	if arr.NTrials() != 2 {
		t.Errorf("Expected 2 trials, got %d", arr.NTrials())
	}
	sfreq, err := arr.Sfreq()
	if err != nil {
		t.Fatalf("Sfreq returned error: %v", err)
	}
	if math.Abs(sfreq-40000) > 1e-6 {
		t.Errorf("Expected 40000 Hz, got %v", sfreq)
	}
}

// TestRecordInvalidGeometry 测试非法几何在入口处被拒绝。
func TestRecordInvalidGeometry(t *testing.T) {
	arr, _ := electrode.NewAt(types.Vec3{0, 0, 20}, 0.3, types.MethodPSA, 0.5)
	if err := Record(arr, nil, func(float64, []float64) {}, 1, 0.025); err == nil {
		t.Errorf("Expected error for empty geometry")
	}
}
