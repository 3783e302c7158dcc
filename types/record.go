package types

// CurrentSource 仿真引擎提供的膜电流读取能力
type CurrentSource interface {
	Currents() []float64 // 按几何枚举顺序读取当前瞬时膜电流(nA)
	Time() float64       // 当前仿真时间(ms)
}

// Observer 积分步观察者
// 积分器每前进一步同步调用一次 Update, 返回错误时中止仿真
type Observer interface {
	Update(src CurrentSource) error // 处理当前积分步
}

// Integrator 积分引擎注册能力
type Integrator interface {
	CurrentSource
	Attach(obs Observer) // 注册每步观察者
}

// Collective 跨工作进程的归约接口
// 每个工作进程持有不相交几何分区上的部分贡献, 终结时逐元素求和
type Collective interface {
	AllReduceSum(data []float64) ([]float64, error) // 所有工作进程的逐元素求和, 在全员到达前阻塞
}
