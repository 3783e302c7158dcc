// Package electrode 实现胞外电极阵列的数据模型。
//
// 一个 Array 保存一组触点的三维位置与共享的导电参数, 以及按
// [试次][触点][采样] 组织的电压序列(µV)和共享的采样时间序列(ms)。
// 几何参数在构造后不可变; 电压存储只通过记录会话或带校验的
// 预置数据构造写入。
package electrode

import (
	"errors"
	"fmt"

	"lfp/types"
)

// 一致性错误定义
var (
	ErrNoSamples      = errors.New("尚未记录任何采样")
	ErrOneSample      = errors.New("单个采样无法定义采样率")
	ErrIrregularTimes = errors.New("胞外采样间隔偏差超过1µs")
	ErrTrialRange     = errors.New("试次索引超出范围")
)

// Array 胞外电极阵列
type Array struct {
	Positions   []types.Vec3 // 触点三维坐标(µm), 构造后不可变
	Sigma       float64      // 胞外电导率(S/m), 假定无限均匀容积导体
	Method      types.Method // 转移电阻近似方法
	MinDistance float64      // 触点与膜的最小距离保护(µm)

	times    []float64     // 共享采样时间序列(ms)
	voltages [][][]float64 // 电压存储 [试次][触点][采样](µV)
}

// New 构造电极阵列
func New(positions []types.Vec3, sigma float64, method types.Method, minDistance float64) (*Array, error) {
	return NewWithData(positions, sigma, method, minDistance, nil, nil)
}

// NewAt 以单个触点坐标构造电极阵列
// 单个坐标自动包装为只含一个触点的阵列。
func NewAt(position types.Vec3, sigma float64, method types.Method, minDistance float64) (*Array, error) {
	return New([]types.Vec3{position}, sigma, method, minDistance)
}

// NewWithData 以预置的时间与电压数据构造电极阵列
// 每个试次的电压块必须每个触点一行, 每行长度与 times 一致,
// 不匹配时报告出错的试次/通道与冲突的长度。
func NewWithData(positions []types.Vec3, sigma float64, method types.Method, minDistance float64, times []float64, voltages [][][]float64) (*Array, error) {
	if len(positions) == 0 {
		return nil, errors.New("电极触点位置不能为空")
	}
	if !(sigma > 0) {
		return nil, fmt.Errorf("电导率必须为正数: %v", sigma)
	}
	if !(minDistance > 0) {
		return nil, fmt.Errorf("最小距离保护必须为正数: %v", minDistance)
	}
	if !method.Valid() {
		return nil, fmt.Errorf("未注册的近似方法: %d", method)
	}
	if times == nil {
		times = []float64{}
	}
	if voltages == nil {
		voltages = [][][]float64{}
	}
	for ti := range voltages {
		if len(voltages[ti]) != len(positions) {
			return nil, fmt.Errorf("电压道数必须与触点数一致: 试次 %d 得到 %d 道, 期望 %d", ti, len(voltages[ti]), len(positions))
		}
		for ci := range voltages[ti] {
			if len(voltages[ti][ci]) != len(times) {
				return nil, fmt.Errorf("times 与电压长度必须一致: 试次 %d 通道 %d 得到 %d 与 %d", ti, ci, len(times), len(voltages[ti][ci]))
			}
		}
	}
	return &Array{
		Positions:   positions,
		Sigma:       sigma,
		Method:      method,
		MinDistance: minDistance,
		times:       times,
		voltages:    voltages,
	}, nil
}

// NContacts 触点数量
func (arr *Array) NContacts() int { return len(arr.Positions) }

// NTrials 试次数量
func (arr *Array) NTrials() int { return len(arr.voltages) }

// NSamples 采样数量
func (arr *Array) NSamples() int { return len(arr.times) }

// Times 共享采样时间序列(ms)
func (arr *Array) Times() []float64 { return arr.times }

// Voltages 电压存储 [试次][触点][采样](µV)
func (arr *Array) Voltages() [][][]float64 { return arr.voltages }

// Trial 选取单个试次, 返回共享几何参数的新阵列
func (arr *Array) Trial(i int) (*Array, error) { return arr.Trials(i) }

// Trials 按索引列表选取试次, 保持给定顺序
func (arr *Array) Trials(idx ...int) (*Array, error) {
	data := make([][][]float64, 0, len(idx))
	for _, i := range idx {
		if i < 0 || i >= len(arr.voltages) {
			return nil, fmt.Errorf("%w: 数据共包含 %d 个试次, 得到索引 %d", ErrTrialRange, len(arr.voltages), i)
		}
		data = append(data, arr.voltages[i])
	}
	return &Array{
		Positions:   arr.Positions,
		Sigma:       arr.Sigma,
		Method:      arr.Method,
		MinDistance: arr.MinDistance,
		times:       arr.times,
		voltages:    data,
	}, nil
}

// TrialRange 选取半开区间 [lo, hi) 内的试次
func (arr *Array) TrialRange(lo, hi int) (*Array, error) {
	if lo < 0 || hi > len(arr.voltages) || lo > hi {
		return nil, fmt.Errorf("%w: 数据共包含 %d 个试次, 得到区间 [%d, %d)", ErrTrialRange, len(arr.voltages), lo, hi)
	}
	idx := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		idx = append(idx, i)
	}
	return arr.Trials(idx...)
}

// AppendTrial 追加一个已终结试次的电压块
// 由记录会话在终结时调用; times 在首个试次写入, 其后只校验长度一致。
func (arr *Array) AppendTrial(times []float64, volts [][]float64) error {
	if len(volts) != len(arr.Positions) {
		return fmt.Errorf("电压道数必须与触点数一致: 试次 %d 得到 %d 道, 期望 %d", len(arr.voltages), len(volts), len(arr.Positions))
	}
	for ci := range volts {
		if len(volts[ci]) != len(times) {
			return fmt.Errorf("times 与电压长度必须一致: 试次 %d 通道 %d 得到 %d 与 %d", len(arr.voltages), ci, len(times), len(volts[ci]))
		}
	}
	if len(arr.times) > 0 && len(times) != len(arr.times) {
		return fmt.Errorf("各试次采样数量必须一致: 已有 %d, 得到 %d", len(arr.times), len(times))
	}
	arr.times = times
	arr.voltages = append(arr.voltages, volts)
	return nil
}

// Reset 清空已记录的时间与电压数据, 几何参数保持不变
func (arr *Array) Reset() {
	arr.times = []float64{}
	arr.voltages = [][][]float64{}
}

// Copy 返回完全独立的深拷贝
func (arr *Array) Copy() *Array {
	cp := &Array{
		Positions:   append([]types.Vec3{}, arr.Positions...),
		Sigma:       arr.Sigma,
		Method:      arr.Method,
		MinDistance: arr.MinDistance,
		times:       append([]float64{}, arr.times...),
		voltages:    make([][][]float64, len(arr.voltages)),
	}
	for ti := range arr.voltages {
		cp.voltages[ti] = make([][]float64, len(arr.voltages[ti]))
		for ci := range arr.voltages[ti] {
			cp.voltages[ti][ci] = append([]float64{}, arr.voltages[ti][ci]...)
		}
	}
	return cp
}

// String 输出阵列状态摘要
func (arr *Array) String() string {
	msg := fmt.Sprintf("%d electrodes, sigma=%v, method=%s", len(arr.Positions), arr.Sigma, arr.Method)
	if len(arr.voltages) > 0 {
		msg += fmt.Sprintf(" | %d trials, %d times", len(arr.voltages), len(arr.times))
	} else {
		msg += " (no data recorded yet)"
	}
	return fmt.Sprintf("<Array | %s>", msg)
}
