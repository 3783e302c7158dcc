package electrode

import (
	"math"
	"testing"

	"lfp/types"
)

// TestSmoothPreservesShape 测试平滑保持 (试次, 触点, 采样) 形状,
// 且常数波形的内部区域经归一化窗卷积后保持不变。
func TestSmoothPreservesShape(t *testing.T) {
	positions := []types.Vec3{{0, 0, 0}, {0, 0, 100}}
	n := 100
	times := make([]float64, n)
	for i := range times {
		times[i] = float64(i) * 0.025
	}
	voltages := make([][][]float64, 2)
	for ti := range voltages {
		voltages[ti] = make([][]float64, 2)
		for ci := range voltages[ti] {
			voltages[ti][ci] = make([]float64, n)
			for si := range voltages[ti][ci] {
				voltages[ti][ci][si] = 2.5
			}
		}
	}
	arr, err := NewWithData(positions, 0.3, types.MethodPSA, 0.5, times, voltages)
	if err != nil {
		t.Fatalf("NewWithData returned error: %v", err)
	}

	if err := arr.Smooth(0.25); err != nil { // 0.25 ms ≙ 10 采样
		t.Fatalf("Smooth returned error: %v", err)
	}
	if arr.NTrials() != 2 || arr.NContacts() != 2 || arr.NSamples() != n {
		t.Errorf("Expected shape (2,2,%d), got (%d,%d,%d)", n, arr.NTrials(), arr.NContacts(), arr.NSamples())
	}
	// 远离边界处常数波形应保持原值
	if math.Abs(arr.Voltages()[0][0][n/2]-2.5) > 1e-9 {
		t.Errorf("Expected interior value 2.5, got %v", arr.Voltages()[0][0][n/2])
	}
}

// TestSmoothValidation 测试非法窗时长与无采样率时的错误。
func TestSmoothValidation(t *testing.T) {
	positions := []types.Vec3{{0, 0, 0}}
	times := []float64{0, 1, 2, 3}
	voltages := [][][]float64{{{1, 2, 3, 4}}}
	arr, _ := NewWithData(positions, 0.3, types.MethodPSA, 0.5, times, voltages)

	if err := arr.Smooth(0); err == nil {
		t.Errorf("Expected error for zero window length")
	}
	if err := arr.Smooth(100); err == nil {
		t.Errorf("Expected error for window longer than data")
	}

	// 无数据时采样率无定义
	empty, _ := New(positions, 0.3, types.MethodPSA, 0.5)
	if err := empty.Smooth(1); err == nil {
		t.Errorf("Expected error when sampling rate is undefined")
	}
}
