package types

import (
	"math"
	"testing"
)

// TestVec3Operations 测试三维向量的基本运算。
func TestVec3Operations(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Vec3 Add failed. Got %v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Vec3 Sub failed. Got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Expected dot product 32, got %f", got)
	}
	if got := (Vec3{3, 4, 0}).Norm(); got != 5 {
		t.Errorf("Expected norm 5, got %f", got)
	}

	// 单位化后模长为1
	u := Vec3{0, 0, 7}.Unit()
	if math.Abs(u.Norm()-1) > 1e-12 || u != (Vec3{0, 0, 1}) {
		t.Errorf("Vec3 Unit failed. Got %v", u)
	}
	// 零向量单位化返回零值
	if got := (Vec3{}).Unit(); got != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", got)
	}
}

// TestMethodRegistry 测试近似方法的名称映射与有效性判断。
func TestMethodRegistry(t *testing.T) {
	cases := map[string]Method{
		"psa":  MethodPSA,
		"lsa":  MethodLSA,
		"none": MethodNone,
	}
	for name, want := range cases {
		m, err := GetNameMethod(name)
		if err != nil {
			t.Errorf("GetNameMethod(%q) returned error: %v", name, err)
		}
		if m != want {
			t.Errorf("Expected method %d for %q, got %d", want, name, m)
		}
		if m.String() != name {
			t.Errorf("Expected name %q, got %q", name, m.String())
		}
		if !m.Valid() {
			t.Errorf("Expected method %q to be valid", name)
		}
	}

	// 未注册名称返回错误
	if _, err := GetNameMethod("csd"); err == nil {
		t.Errorf("Expected error for unregistered method name")
	}
	if Method(42).Valid() {
		t.Errorf("Expected Method(42) to be invalid")
	}
}
