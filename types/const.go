package types

// 默认参数常量定义
var (
	DefaultSigma       = 0.3  // 默认胞外电导率(S/m), 大鼠皮层测量值
	DefaultMinDistance = 0.5  // 默认最小距离保护(µm), 对应直径1µm的树突半径
	TimeTolerance      = 1e-3 // 采样间隔一致性容差(ms), 即1µs
)
