package types

// SectionID 区段索引
type SectionID = int

// SegmentID 分段索引
type SegmentID = int

// Section 一段电缆状神经突起的三维几何
// 分段中心按偏移 (2i+1)/(2·Nseg) 排布, 不含两个端点
type Section struct {
	Start Vec3    // 0端三维坐标(µm)
	End   Vec3    // 1端三维坐标(µm)
	L     float64 // 物理长度(µm)
	Nseg  int     // 分段数量
}

// Segment 单个膜分段的几何信息
type Segment struct {
	Ctr     Vec3    // 分段中心点(µm)
	Axis    Vec3    // 所属区段的单位轴向量
	LineLen float64 // 线源近似的半线长(µm), 线段为 Ctr±LineLen·Axis
}
