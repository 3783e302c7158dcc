// Package lfp 由网络膜电流计算胞外电场电位(如局部场电位 LFP)。
//
// 核心分为四部分: geometry 把区段几何展开为有序分段枚举, transfer
// 计算电极与分段间的转移电阻系数, electrode 承载多试次/多触点的
// 电压数据模型, record 把阵列绑定到步进中的仿真并逐步累积电压。
// 本包提供把它们串起来完成一个试次的入口。
package lfp

import (
	"lfp/electrode"
	"lfp/geometry"
	"lfp/record"
	"lfp/sim"
	"lfp/types"
)

// Record 在给定几何上驱动一次仿真试次并记录胞外电位
//
//	arr: 目标电极阵列, 记录结果作为一个新试次追加
//	secs: 有序区段几何
//	fn: 每步计算各分段膜电流(nA)的回调
//	tstop: 仿真终止时间(ms)
//	dt: 固定积分步长(ms)
func Record(arr *electrode.Array, secs []types.Section, fn sim.CurrentFunc, tstop, dt float64) error {
	segs, err := geometry.Flatten(secs)
	if err != nil {
		return err
	}
	eng, err := sim.New(len(segs), dt, fn)
	if err != nil {
		return err
	}
	sess := record.NewSession(arr)
	if err := sess.Build(segs, eng); err != nil {
		return err
	}
	if err := eng.Run(tstop); err != nil {
		return err
	}
	return sess.Finalize(record.Serial{})
}
