package electrode

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"lfp/types"
)

// Sfreq 推断采样率(Hz)
//
// 采样率取中位采样间隔的倒数, 仅当所有间隔与中位值的偏差不超过
// 1µs 时有定义, 下游谱分析假定均匀采样。
func (arr *Array) Sfreq() (float64, error) {
	n := len(arr.times)
	if n == 0 {
		return 0, ErrNoSamples
	}
	if n == 1 {
		return 0, ErrOneSample
	}
	dT := make([]float64, n-1)
	for i := range dT {
		dT[i] = arr.times[i+1] - arr.times[i]
	}
	sorted := append([]float64{}, dT...)
	sort.Float64s(sorted)
	tsamp := stat.Quantile(0.5, stat.Empirical, sorted, nil)
	if math.Abs(floats.Max(dT)-tsamp) > types.TimeTolerance ||
		math.Abs(floats.Min(dT)-tsamp) > types.TimeTolerance {
		return 0, fmt.Errorf("%w: 请检查 times 序列", ErrIrregularTimes)
	}
	// times 单位为 ms
	return 1000 / tsamp, nil
}

// Data 导出稠密的三维电压数组 (试次×触点×采样)
// 触点顺序与 Positions 一致, 返回的数据为独立拷贝。
func (arr *Array) Data() [][][]float64 {
	data := make([][][]float64, len(arr.voltages))
	for ti := range arr.voltages {
		data[ti] = make([][]float64, len(arr.voltages[ti]))
		for ci := range arr.voltages[ti] {
			data[ti][ci] = append([]float64{}, arr.voltages[ti][ci]...)
		}
	}
	return data
}

// DataAndTimes 导出稠密电压数组与采样时间数组
func (arr *Array) DataAndTimes() ([][][]float64, []float64) {
	return arr.Data(), append([]float64{}, arr.times...)
}

// TrialMatrix 以 触点×采样 稠密矩阵导出单个试次
func (arr *Array) TrialMatrix(i int) (*mat.Dense, error) {
	if i < 0 || i >= len(arr.voltages) {
		return nil, fmt.Errorf("%w: 数据共包含 %d 个试次, 得到索引 %d", ErrTrialRange, len(arr.voltages), i)
	}
	if len(arr.times) == 0 {
		return nil, ErrNoSamples
	}
	m := mat.NewDense(len(arr.Positions), len(arr.times), nil)
	for ci, row := range arr.voltages[i] {
		m.SetRow(ci, row)
	}
	return m, nil
}
