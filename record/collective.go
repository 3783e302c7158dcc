package record

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// Serial 单进程归约
// 只有一个工作进程时部分贡献即为全量, 原样返回。
type Serial struct{}

// AllReduceSum 所有工作进程的逐元素求和
func (Serial) AllReduceSum(data []float64) ([]float64, error) {
	return data, nil
}

// round 一轮归约的共享状态
type round struct {
	sum  []float64
	err  error
	done chan struct{}
}

// Group 进程内多工作者归约屏障
// size 个工作者各自携带等长的部分贡献调用 AllReduceSum, 全员到达
// 前阻塞, 到达后每个调用方都得到同一份逐元素求和结果。屏障可跨
// 试次复用, 一轮结束自动复位。
type Group struct {
	size int

	mu    sync.Mutex
	count int
	cur   *round
}

// NewGroup 创建 size 个工作者的归约屏障
func NewGroup(size int) *Group {
	if size < 1 {
		panic("归约屏障工作者数量必须为正数")
	}
	return &Group{size: size}
}

// AllReduceSum 所有工作进程的逐元素求和
// 各工作者的缓冲长度必须一致, 不一致属于分区配置缺陷, 本轮所有
// 工作者都会收到同一错误。
func (g *Group) AllReduceSum(data []float64) ([]float64, error) {
	g.mu.Lock()
	if g.count == 0 {
		g.cur = &round{sum: make([]float64, len(data)), done: make(chan struct{})}
	}
	r := g.cur
	if len(data) != len(r.sum) {
		if r.err == nil {
			r.err = fmt.Errorf("工作者缓冲长度不一致: 得到 %d, 期望 %d", len(data), len(r.sum))
		}
	} else if r.err == nil {
		floats.Add(r.sum, data)
	}
	g.count++
	if g.count == g.size {
		// 本轮齐备, 释放屏障并复位供下一轮使用
		g.count = 0
		close(r.done)
	}
	g.mu.Unlock()

	<-r.done
	if r.err != nil {
		return nil, r.err
	}
	out := make([]float64, len(r.sum))
	copy(out, r.sum)
	return out, nil
}
