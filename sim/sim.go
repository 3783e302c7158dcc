// Package sim 提供驱动记录会话的最小固定步长积分引擎。
//
// 真实系统中积分器由外部仿真引擎提供, 核心只要求对方实现
// types.Integrator; 这里的引擎承担同一协议: 每步更新膜电流向量与
// 仿真时间, 并同步调用所有已注册的观察者。
package sim

import (
	"fmt"

	"lfp/types"
)

// CurrentFunc 计算给定时刻各分段的瞬时膜电流(nA)
// imem 按几何枚举顺序排列, 回调原地写入。
type CurrentFunc func(t float64, imem []float64)

// Engine 固定步长积分驱动
type Engine struct {
	dt   float64
	time float64
	imem []float64
	fn   CurrentFunc
	obs  []types.Observer
}

// New 创建拥有 nSegs 个分段、步长 dt(ms) 的引擎
func New(nSegs int, dt float64, fn CurrentFunc) (*Engine, error) {
	if nSegs < 1 {
		return nil, fmt.Errorf("分段数量必须为正数: %d", nSegs)
	}
	if !(dt > 0) {
		return nil, fmt.Errorf("积分步长必须为正数: %v", dt)
	}
	return &Engine{dt: dt, imem: make([]float64, nSegs), fn: fn}, nil
}

// Attach 注册每步观察者
func (e *Engine) Attach(obs types.Observer) {
	e.obs = append(e.obs, obs)
}

// Currents 按几何枚举顺序读取当前瞬时膜电流(nA)
func (e *Engine) Currents() []float64 { return e.imem }

// Time 当前仿真时间(ms)
func (e *Engine) Time() float64 { return e.time }

// Run 从 t=0 步进到 tstop(ms), 含两端时间点
// 每步先更新电流再依次通知观察者; 观察者返回错误时立即中止,
// 留在记录中途的会话应被丢弃而非终结。
func (e *Engine) Run(tstop float64) error {
	if tstop < 0 {
		return fmt.Errorf("仿真终止时间必须非负: %v", tstop)
	}
	e.time = 0
	for step := 0; ; step++ {
		e.time = float64(step) * e.dt
		if e.time > tstop+e.dt/2 {
			break
		}
		e.fn(e.time, e.imem)
		for _, obs := range e.obs {
			if err := obs.Update(e); err != nil {
				return fmt.Errorf("积分步 %d 观察者中止: %w", step, err)
			}
		}
	}
	return nil
}
