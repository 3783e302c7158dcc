package main

import (
	"fmt"
	"math"
	"os"

	"lfp"
	"lfp/debug"
	"lfp/electrode"
	"lfp/types"
)

func main() {
	// 层状三触点阵列, 沿z轴排布
	arr, err := electrode.New([]types.Vec3{
		{0, 0, 20},
		{0, 0, 120},
		{0, 0, 220},
	}, types.DefaultSigma, types.MethodLSA, types.DefaultMinDistance)
	if err != nil {
		fmt.Println(err)
		return
	}

	// 两段玩具细胞: 体区段与顶树突区段
	secs := []types.Section{
		{Start: types.Vec3{0, 0, -10}, End: types.Vec3{0, 0, 10}, L: 20, Nseg: 3},
		{Start: types.Vec3{0, 0, 10}, End: types.Vec3{0, 0, 210}, L: 200, Nseg: 9},
	}

	// 正弦膜电流: 近端流出, 远端按比例回流
	fn := func(t float64, imem []float64) {
		drive := math.Sin(2 * math.Pi * t / 10)
		for i := range imem {
			imem[i] = drive * (1 - 2*float64(i)/float64(len(imem)-1))
		}
	}

	for trial := 0; trial < 2; trial++ {
		if err := lfp.Record(arr, secs, fn, 100, 0.025); err != nil {
			fmt.Println(err)
			return
		}
	}
	fmt.Println(arr)

	// 平滑一份拷贝并绘制
	smoothed := arr.Copy()
	if err := smoothed.Smooth(5); err != nil {
		fmt.Println(err)
		return
	}
	f, err := os.Create("lfp.html")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()
	fmt.Println(debug.NewCharts(debug.NewRecord(smoothed)).Render(f))
}
