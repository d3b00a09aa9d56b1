// 文件: pkg/binomial/lattice.go
// 二叉树资产价格格子 (重组型)
//
// 【结构】
// 节点 (i, j) 表示走过 i 步、其中 j 步下跌后的资产价格:
//
//	Node(i, j) = Spot * u^(i-j) * d^j
//
// 重组性质: 先涨后跌和先跌后涨到达同一节点，
// 所以节点数量随步数线性增长，而不是指数增长。

package binomial

// Lattice 二叉树价格格子
// 每次定价调用独立构建一份，构建完成后只读
type Lattice struct {
	Spot  float64 // 初始价格 (节点 0,0)
	Up    float64 // 上涨乘数 u
	Down  float64 // 下跌乘数 d
	Steps int     // 总步数 N

	// nodes[i][j]: 第 i 步、j 次下跌的价格
	// 三角形结构: len(nodes[i]) == i+1
	nodes [][]float64
}

// newLattice 构建价格格子
// 递推规则:
//   - 节点 (i, 0) = 节点 (i-1, 0) * u (纯上涨路径)
//   - 节点 (i, j) = 节点 (i-1, j-1) * d (在上一层少跌一次的节点上再跌一步)
func newLattice(spot float64, steps int, u, d float64) *Lattice {
	nodes := make([][]float64, steps+1)
	nodes[0] = []float64{spot}

	for i := 1; i <= steps; i++ {
		row := make([]float64, i+1)
		row[0] = nodes[i-1][0] * u
		for j := 1; j <= i; j++ {
			row[j] = nodes[i-1][j-1] * d
		}
		nodes[i] = row
	}

	return &Lattice{
		Spot:  spot,
		Up:    u,
		Down:  d,
		Steps: steps,
		nodes: nodes,
	}
}

// Node 返回节点 (i, j) 的资产价格
// i: 时间步 [0, Steps], j: 下跌次数 [0, i]
func (l *Lattice) Node(i, j int) float64 {
	return l.nodes[i][j]
}

// Terminal 返回到期层的全部价格 (副本, j = 0..Steps)
func (l *Lattice) Terminal() []float64 {
	last := l.nodes[l.Steps]
	out := make([]float64, len(last))
	copy(out, last)
	return out
}
