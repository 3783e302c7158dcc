// Package record 把电极阵列绑定到正在步进的仿真, 逐步累积触点电压。
//
// 会话在构建时一次性计算 触点×分段 的转移电阻矩阵, 注册为积分器
// 的每步观察者; 每个积分步读取瞬时膜电流向量, 做矩阵-向量乘并追加
// 一列触点电压。终结时把缓冲重排为 触点×采样, 跨工作进程逐元素
// 求和归约后写入所属阵列。
package record

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"lfp/electrode"
	"lfp/transfer"
	"lfp/types"
)

// State 会话状态
type State uint

// 会话状态常量定义
const (
	StateUnbuilt   State = iota // 未构建
	StateArmed                  // 已构建待记录
	StateRecording              // 记录中
	StateFinalized              // 已终结
)

// stateString 状态映射
var stateString = map[State]string{
	StateUnbuilt:   "unbuilt",
	StateArmed:     "armed",
	StateRecording: "recording",
	StateFinalized: "finalized",
}

// String 返回会话状态的字符串表示
func (s State) String() string {
	if v, ok := stateString[s]; ok {
		return v
	}
	return "unknown"
}

// 致命与状态错误定义
var (
	ErrSegmentCount = errors.New("膜电流数量与转移电阻矩阵列数不一致")
	ErrState        = errors.New("会话状态不允许该操作")
	ErrNotRun       = errors.New("仿真尚未运行")
)

// Session 记录会话
// 电压/时间缓冲由会话独占, 只在积分线程的 Update 回调中追加。
type Session struct {
	arr   *electrode.Array
	xfer  *mat.Dense    // 触点×分段 转移电阻矩阵
	nSegs int           // 本分区分段数量
	imem  *mat.VecDense // 膜电流读取缓冲
	col   *mat.VecDense // 每步触点电压列

	voltages []float64 // 追加式电压缓冲, 步序展开(每步 nContacts 个值)
	times    []float64 // 追加式时间缓冲(ms)

	state State
	err   error // 致命错误后粘滞, 终结时原样返回
}

// NewSession 创建绑定到指定电极阵列的记录会话
func NewSession(arr *electrode.Array) *Session {
	return &Session{arr: arr, state: StateUnbuilt}
}

// State 当前会话状态
func (s *Session) State() State { return s.state }

// Build 构建转移电阻矩阵并注册为积分器的每步观察者
//
// segs 为本工作进程分区内的有序分段几何, 会话假定其在生命周期内
// 保持稳定; 几何在 Build 之后发生变化属于协作方缺陷, 将在步进时
// 以 ErrSegmentCount 中止记录。
func (s *Session) Build(segs []types.Segment, eng types.Integrator) error {
	if s.state != StateUnbuilt {
		return fmt.Errorf("%w: Build 需要 unbuilt, 当前 %s", ErrState, s.state)
	}
	if len(segs) == 0 {
		return errors.New("分段几何不能为空")
	}
	n := s.arr.NContacts()
	s.nSegs = len(segs)
	s.xfer = mat.NewDense(n, s.nSegs, nil)
	for row, pos := range s.arr.Positions {
		s.xfer.SetRow(row, transfer.Resistance(segs, pos, s.arr.Sigma, s.arr.Method, s.arr.MinDistance))
	}
	s.imem = mat.NewVecDense(s.nSegs, nil)
	s.col = mat.NewVecDense(n, nil)
	s.voltages = make([]float64, 0)
	s.times = make([]float64, 0)
	s.state = StateArmed
	eng.Attach(s)
	return nil
}

// Update 积分步回调
//
// 读取当前膜电流向量, 计算 转移矩阵·电流 得到触点电压列并追加,
// 同时追加当前仿真时间。电流数量与矩阵列数不一致时记录致命错误
// 并中止, 绝不产出错位数据。
func (s *Session) Update(src types.CurrentSource) error {
	if s.err != nil {
		return s.err
	}
	if s.state != StateArmed && s.state != StateRecording {
		return fmt.Errorf("%w: Update 需要 armed/recording, 当前 %s", ErrState, s.state)
	}
	cur := src.Currents()
	if len(cur) != s.nSegs {
		s.err = fmt.Errorf("%w: 期望 %d 个电流, 得到 %d", ErrSegmentCount, s.nSegs, len(cur))
		return s.err
	}
	s.state = StateRecording
	copy(s.imem.RawVector().Data, cur)
	// V_i = SUM_j (R_i,j · I_j)
	s.col.MulVec(s.xfer, s.imem)
	s.voltages = append(s.voltages, s.col.RawVector().Data...)
	s.times = append(s.times, src.Time())
	return nil
}

// Finalize 终结一个试次
//
// 把电压缓冲重排为 触点×采样, 经 coll 对所有工作进程的部分贡献
// 做逐元素求和归约(这是一个同步屏障), 再将结果追加到所属阵列。
// 每个试次调用一次; 记录中途发生的致命错误在此原样返回。
func (s *Session) Finalize(coll types.Collective) error {
	if s.err != nil {
		return s.err
	}
	if s.state != StateRecording {
		if s.state == StateArmed {
			return ErrNotRun
		}
		return fmt.Errorf("%w: Finalize 需要 recording, 当前 %s", ErrState, s.state)
	}
	n := s.arr.NContacts()
	if len(s.voltages)%n != 0 {
		return fmt.Errorf("电压缓冲长度异常: %d 个触点, %d 个值", n, len(s.voltages))
	}
	nSamples := len(s.voltages) / n

	// 跨工作进程归约: 每个分区只持有自己分段的部分贡献, 求和后才有效
	reduced, err := coll.AllReduceSum(s.voltages)
	if err != nil {
		return fmt.Errorf("跨工作进程归约失败: %w", err)
	}

	// 步序展开缓冲 (采样, 触点) 重排为 触点×采样
	volts := make([][]float64, n)
	for ci := range volts {
		volts[ci] = make([]float64, nSamples)
		for si := 0; si < nSamples; si++ {
			volts[ci][si] = reduced[si*n+ci]
		}
	}

	// 积分器可能在最后一次电流采集之后再报告一个时间点, 截断到采样数
	times := s.times
	if len(times) == nSamples+1 {
		times = times[:nSamples]
	}
	if len(times) != nSamples {
		return fmt.Errorf("时间缓冲长度异常: %d 个采样, %d 个时间点", nSamples, len(times))
	}
	if err := s.arr.AppendTrial(append([]float64{}, times...), volts); err != nil {
		return err
	}
	s.state = StateFinalized
	return nil
}
