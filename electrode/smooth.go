package electrode

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/window"
	"gonum.org/v1/gonum/floats"
)

// Smooth 以汉明窗卷积平滑所有波形
//
// windowLen 为窗时长(ms), 按采样率换算为采样点数。操作原地替换
// 存储的波形; 需要保留原始数据时先调用 Copy。
func (arr *Array) Smooth(windowLen float64) error {
	sfreq, err := arr.Sfreq()
	if err != nil {
		return err
	}
	if !(windowLen > 0) {
		return fmt.Errorf("平滑窗口时长必须为正数: %v", windowLen)
	}
	n := int(math.Round(windowLen * sfreq / 1000))
	if n < 1 {
		return fmt.Errorf("平滑窗口短于一个采样间隔: %v ms", windowLen)
	}
	if n > len(arr.times) {
		return fmt.Errorf("平滑窗口长于数据: %d > %d 采样", n, len(arr.times))
	}
	// 归一化汉明窗系数
	win := make([]float64, n)
	for i := range win {
		win[i] = 1
	}
	window.Hamming(win)
	floats.Scale(1/floats.Sum(win), win)

	for ti := range arr.voltages {
		for ci := range arr.voltages[ti] {
			arr.voltages[ti][ci] = convolveSame(arr.voltages[ti][ci], win)
		}
	}
	return nil
}

// convolveSame 与窗系数做等长卷积, 边界按零填充
// 取满卷积的中心 len(x) 段, 对齐 numpy convolve 的 'same' 模式。
func convolveSame(x, w []float64) []float64 {
	out := make([]float64, len(x))
	off := (len(w) - 1) / 2
	for i := range out {
		var sum float64
		for j, wj := range w {
			if k := i + off - j; k >= 0 && k < len(x) {
				sum += wj * x[k]
			}
		}
		out[i] = sum
	}
	return out
}
