// Package transfer 计算电极触点与膜分段之间的转移电阻系数。
//
// 线源近似依据 Holt (1998) 博士论文附录C的原始推导, 点源近似把分段
// 电流集中到分段中心。系数单位满足 电压[µV] = 系数 · 电流[nA]。
package transfer

import (
	"math"

	"lfp/types"
)

// Resistance 计算一个电极位置对所有分段的转移电阻系数
//
//	segs: 有序分段几何
//	pos: 电极三维坐标(µm)
//	sigma: 胞外电导率(S/m)
//	method: 近似方法
//	minDistance: 最小距离保护(µm)
//
// 纯数值函数, 假定输入已在电极阵列构造时校验。
func Resistance(segs []types.Segment, pos types.Vec3, sigma float64, method types.Method, minDistance float64) []float64 {
	phi := make([]float64, len(segs))
	switch method {
	case types.MethodPSA:
		for i, seg := range segs {
			// 电极贴近分段交界时强制最小径向距离, 避免 1/R 发散
			dis := math.Max(pos.Sub(seg.Ctr).Norm(), minDistance)
			phi[i] = 1 / dis
		}
	case types.MethodLSA:
		//                      电极位置
		//   |------ L --------*
		//                 b / | R
		//                 /   |
		//   0==== a ====1- H -+
		//
		// a: 沿区段方向的线段向量
		// b: 电极相对线段末端(1)的位置向量
		// H: 线段末端到电极的平行距离(带符号)
		// R: 线段末端到电极的径向距离
		// L: 线段起点到电极的平行距离
		for i, seg := range segs {
			start := seg.Ctr.Sub(seg.Axis.Scale(seg.LineLen))
			end := seg.Ctr.Add(seg.Axis.Scale(seg.LineLen))
			a := end.Sub(start)
			normA := a.Norm()
			b := pos.Sub(end)
			// 投影: H = a.cos(theta) = a·b / |a|, 可为负
			H := b.Dot(a) / normA
			L := H + normA
			R2 := b.Dot(b) - H*H
			// 电极落在区段轴线上时强制最小垂直距离
			R2 = math.Max(R2, minDistance*minDistance)

			var num, denom float64
			switch {
			case L < 0 && H < 0: // 电极在线段"后方"
				num = math.Sqrt(H*H+R2) - H
				denom = math.Sqrt(L*L+R2) - L
			case L > 0 && H < 0: // 电极在线段"侧上方"
				num = (math.Sqrt(H*H+R2) - H) * (L + math.Sqrt(L*L+R2))
				denom = R2
			default: // 电极在线段"前方"
				num = math.Sqrt(L*L+R2) + L
				denom = math.Sqrt(H*H+R2) + H
			}
			phi[i] = math.Log(num/denom) / normA
		}
	default:
		// 测试模式: 绕过几何, 全部系数为1
		for i := range phi {
			phi[i] = 1
		}
		return phi
	}
	// [dis]: µm; [sigma]: S/m
	// [phi/sigma] = 1 / ([dis]·[sigma]) = 1 / 1e-6 S
	// 膜电流单位为 nA ==> 1e-9 A · (1/1e-6 S) = 1e-3 V
	// ===> 乘以 1e3 得到 µV
	for i := range phi {
		phi[i] *= 1000 / (4 * math.Pi * sigma)
	}
	return phi
}
