// Package debug 导出与绘制已记录的胞外电位数据。
package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"lfp/electrode"
	"lfp/types"
)

// Record 记录数据导出
type Record struct {
	Positions []types.Vec3  // 触点坐标
	Sigma     float64       // 电导率
	Method    string        // 近似方法
	Contacts  []string      // 触点名称
	Times     []float64     // 时间列
	Voltages  [][][]float64 // 电压数据 [试次][触点][采样]
}

// NewRecord 从电极阵列构造导出结构
func NewRecord(arr *electrode.Array) *Record {
	data, times := arr.DataAndTimes()
	names := make([]string, arr.NContacts())
	for i, pos := range arr.Positions {
		names[i] = fmt.Sprintf("Contact(%d) @ %v", i, pos)
	}
	return &Record{
		Positions: arr.Positions,
		Sigma:     arr.Sigma,
		Method:    arr.Method.String(),
		Contacts:  names,
		Times:     times,
		Voltages:  data,
	}
}

// Render 格式和输出内容
func (r *Record) Render(w io.Writer) error { return json.NewEncoder(w).Encode(r) }

// Error 报告错误
func (r *Record) Error(err error) { log.Println(err) }
