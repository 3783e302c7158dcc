package geometry

import (
	"math"
	"testing"

	"lfp/types"
)

// TestResolveSegmentCenters 测试分段中心位于归一化偏移 (2i+1)/(2·Nseg) 处,
// 以及边界分段的非对称线长。
func TestResolveSegmentCenters(t *testing.T) {
	sec := types.Section{
		Start: types.Vec3{0, 0, 0},
		End:   types.Vec3{100, 0, 0},
		L:     100,
		Nseg:  5,
	}
	segs, err := Resolve(sec)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(segs) != 5 {
		t.Fatalf("Expected 5 segments, got %d", len(segs))
	}

	// nseg=5 时中心偏移为 0.1, 0.3, 0.5, 0.7, 0.9
	wantX := []float64{10, 30, 50, 70, 90}
	// 首段线长取首个差分, 其余取相邻中心间距
	wantLen := []float64{10, 20, 20, 20, 10}
	for i, seg := range segs {
		if math.Abs(seg.Ctr[0]-wantX[i]) > 1e-12 {
			t.Errorf("Segment %d center: expected x=%v, got %v", i, wantX[i], seg.Ctr[0])
		}
		if math.Abs(seg.LineLen-wantLen[i]) > 1e-12 {
			t.Errorf("Segment %d line length: expected %v, got %v", i, wantLen[i], seg.LineLen)
		}
		if seg.Axis != (types.Vec3{1, 0, 0}) {
			t.Errorf("Segment %d axis: expected unit x, got %v", i, seg.Axis)
		}
	}
}

// TestResolveSingleSegment 测试单分段区段: 中心在区段中点, 线段覆盖整个区段。
func TestResolveSingleSegment(t *testing.T) {
	sec := types.Section{
		Start: types.Vec3{0, 0, -10},
		End:   types.Vec3{0, 0, 10},
		L:     20,
		Nseg:  1,
	}
	segs, err := Resolve(sec)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(segs) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segs))
	}
	if segs[0].Ctr != (types.Vec3{0, 0, 0}) {
		t.Errorf("Expected center at origin, got %v", segs[0].Ctr)
	}
	// 半线长为 L/2, 线段 Ctr±LineLen·Axis 覆盖整个区段
	if math.Abs(segs[0].LineLen-10) > 1e-12 {
		t.Errorf("Expected line length 10, got %v", segs[0].LineLen)
	}
}

// TestResolveInvalidSection 测试非法区段被拒绝。
func TestResolveInvalidSection(t *testing.T) {
	bad := []types.Section{
		{Start: types.Vec3{0, 0, 0}, End: types.Vec3{1, 0, 0}, L: 1, Nseg: 0},  // 分段数为零
		{Start: types.Vec3{0, 0, 0}, End: types.Vec3{1, 0, 0}, L: 0, Nseg: 1},  // 长度为零
		{Start: types.Vec3{2, 2, 2}, End: types.Vec3{2, 2, 2}, L: 1, Nseg: 1},  // 端点重合
	}
	for i, sec := range bad {
		if _, err := Resolve(sec); err == nil {
			t.Errorf("Expected error for invalid section %d", i)
		}
	}
}

// TestFlattenOrdering 测试跨区段展开保持区段顺序与分段顺序。
func TestFlattenOrdering(t *testing.T) {
	secs := []types.Section{
		{Start: types.Vec3{0, 0, 0}, End: types.Vec3{0, 0, 30}, L: 30, Nseg: 3},
		{Start: types.Vec3{0, 0, 30}, End: types.Vec3{0, 0, 50}, L: 20, Nseg: 2},
	}
	segs, err := Flatten(secs)
	if err != nil {
		t.Fatalf("Flatten returned error: %v", err)
	}
	if len(segs) != 5 {
		t.Fatalf("Expected 5 segments, got %d", len(segs))
	}
	wantZ := []float64{5, 15, 25, 35, 45}
	for i, seg := range segs {
		if math.Abs(seg.Ctr[2]-wantZ[i]) > 1e-12 {
			t.Errorf("Segment %d: expected z=%v, got %v", i, wantZ[i], seg.Ctr[2])
		}
	}

	// 含非法区段时报告区段索引
	secs = append(secs, types.Section{Nseg: 1})
	if _, err := Flatten(secs); err == nil {
		t.Errorf("Expected error for invalid section in list")
	}
}
