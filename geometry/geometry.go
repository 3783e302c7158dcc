// Package geometry 将区段几何展开为求解器使用的有序分段枚举。
package geometry

import (
	"fmt"

	"lfp/types"
)

// Resolve 将一个区段展开为有序的分段几何
//
// 分段中心位于归一化偏移 (2i+1)/(2·Nseg) 处, 与区段端点的间距只有
// 内部间距的一半, 因此边界分段的线长不对称: 首段线长向近端加倍,
// 其余取相邻中心间距。
func Resolve(sec types.Section) ([]types.Segment, error) {
	if sec.Nseg < 1 {
		return nil, fmt.Errorf("区段分段数量必须为正数: %d", sec.Nseg)
	}
	if sec.L <= 0 {
		return nil, fmt.Errorf("区段物理长度必须为正数: %v", sec.L)
	}
	vec := sec.End.Sub(sec.Start)
	if vec.Norm() == 0 {
		return nil, fmt.Errorf("区段两端点重合: %v", sec.Start)
	}
	axis := vec.Unit()

	n := sec.Nseg
	// 分段中心的归一化偏移与对应弧长, 两端补区段端点
	arcs := make([]float64, n+2)
	segs := make([]types.Segment, n)
	for i := 0; i < n; i++ {
		x := float64(2*i+1) / float64(2*n)
		segs[i].Ctr = sec.Start.Add(vec.Scale(x))
		segs[i].Axis = axis
		arcs[i+1] = x * sec.L
	}
	arcs[n+1] = sec.L

	// 相邻弧长差分得到线长, 首段取第一个差分(向近端加倍), 再接第三个起的差分
	segs[0].LineLen = arcs[1] - arcs[0]
	for i := 1; i < n; i++ {
		segs[i].LineLen = arcs[i+2] - arcs[i+1]
	}
	return segs, nil
}

// Flatten 将有序区段列表展开为单一分段枚举
// 顺序与输入区段顺序一致, 跨工作进程分区时由调用方保证区段划分稳定。
func Flatten(secs []types.Section) ([]types.Segment, error) {
	segs := make([]types.Segment, 0)
	for i, sec := range secs {
		ss, err := Resolve(sec)
		if err != nil {
			return nil, fmt.Errorf("区段 %d 几何解析失败: %w", i, err)
		}
		segs = append(segs, ss...)
	}
	return segs, nil
}
