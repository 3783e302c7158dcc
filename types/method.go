package types

import "fmt"

// Method 转移电阻近似方法类型
type Method uint

// 近似方法常量定义
const (
	MethodNone Method = iota // 测试模式: 所有系数为1, 绕过几何计算
	MethodPSA                // 点源近似: 分段电流集中在中心点
	MethodLSA                // 线源近似: 分段电流沿有限线段分布
)

// methodString 方法映射
var methodString = map[Method]string{
	MethodNone: "none",
	MethodPSA:  "psa",
	MethodLSA:  "lsa",
}

var mapName = map[string]Method{
	"none": MethodNone,
	"psa":  MethodPSA,
	"lsa":  MethodLSA,
}

// String 返回近似方法的字符串表示
func (m Method) String() string {
	if s, ok := methodString[m]; ok {
		return s
	}
	return "unknown"
}

// Valid 判断方法是否已注册
func (m Method) Valid() bool {
	_, ok := methodString[m]
	return ok
}

// GetNameMethod 通过名称获取近似方法
func GetNameMethod(name string) (Method, error) {
	if m, ok := mapName[name]; ok {
		return m, nil
	}
	return MethodNone, fmt.Errorf("未知近似方法: %q", name)
}
