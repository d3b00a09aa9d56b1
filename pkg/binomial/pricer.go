// 文件: pkg/binomial/pricer.go
// 二叉树期权定价 (Cox-Ross-Rubinstein)
//
// 【流程】
// 1. 推导格子参数: dt, u, d, 风险中性概率 p
// 2. 构建价格格子 (lattice.go)
// 3. 到期层计算内在价值
// 4. 逆向归纳: 每个节点取贴现期望，美式再和立即行权价值取大
//
// 【为什么用树而不是 Black-Scholes】
// 树可以在每个节点处理美式提前行权，闭式公式做不到；
// 步数越多越接近连续时间价格，精度可调。

package binomial

import (
	"errors"
	"math"
)

var (
	// ErrInvalidParams 输入参数非法 (任何计算开始前检出)
	ErrInvalidParams = errors.New("binomial: invalid parameters")

	// ErrArithmeticDomain 参数组合导致数学上退化的中间量
	// 例如 u == d (格子无分叉) 或风险中性概率落在 [0,1] 之外
	ErrArithmeticDomain = errors.New("binomial: arithmetic domain error")
)

// OptionKind 期权方向
type OptionKind int8

const (
	Call OptionKind = iota + 1 // 看涨
	Put                        // 看跌
)

// Style 行权方式
type Style int8

const (
	European Style = iota + 1 // 欧式: 只能到期行权
	American                  // 美式: 任意节点可提前行权
)

// Params 单次定价的全部输入
// 波动率和涨跌幅二选一:
//   - Volatility > 0: u = exp(σ√dt), d = 1/u (保证 u*d = 1)
//   - Up/Down: u = 1+Up, d = 1-Down (加法百分比形式，不保证 u*d = 1，
//     这是教科书公式的原始形态，刻意保留)
type Params struct {
	Kind     OptionKind
	Style    Style
	Spot     float64 // 标的现价
	Strike   float64 // 行权价
	Rate     float64 // 无风险利率 (连续复利, 年化)
	Maturity float64 // 到期时间 (年)
	Steps    int     // 树的步数 N

	Volatility float64 // 年化波动率 (与 Up/Down 互斥)
	Up         float64 // 单步上涨百分比
	Down       float64 // 单步下跌百分比
}

// useVolatility 判断采用哪种涨跌幅表示
// 两种都给或都不给属于非法输入
func (p Params) useVolatility() (bool, error) {
	hasVol := p.Volatility != 0
	hasMove := p.Up != 0 || p.Down != 0

	if hasVol == hasMove {
		return false, ErrInvalidParams
	}
	return hasVol, nil
}

func (p Params) validate() error {
	if p.Kind != Call && p.Kind != Put {
		return ErrInvalidParams
	}
	if p.Style != European && p.Style != American {
		return ErrInvalidParams
	}
	if p.Spot <= 0 || p.Strike <= 0 || p.Maturity <= 0 || p.Steps < 1 {
		return ErrInvalidParams
	}
	if p.Volatility < 0 {
		return ErrInvalidParams
	}
	return nil
}

// treeParams 推导后的格子参数
type treeParams struct {
	dt   float64 // 单步时长
	u    float64 // 上涨乘数
	d    float64 // 下跌乘数
	prob float64 // 风险中性上涨概率
	disc float64 // 单步贴现因子 exp(-r*dt)
}

// derive 从输入推导格子参数
func derive(p Params) (treeParams, error) {
	useVol, err := p.useVolatility()
	if err != nil {
		return treeParams{}, err
	}

	dt := p.Maturity / float64(p.Steps)

	var u, d float64
	if useVol {
		u = math.Exp(p.Volatility * math.Sqrt(dt))
		d = 1 / u
	} else {
		u = 1 + p.Up
		d = 1 - p.Down
	}

	// 价格乘数必须为正，否则格子上会出现零价或负价
	if u <= 0 || d <= 0 {
		return treeParams{}, ErrArithmeticDomain
	}

	// u == d 时格子没有分叉，概率公式分母为零
	if u == d {
		return treeParams{}, ErrArithmeticDomain
	}

	// 风险中性概率: p = (e^{r*dt} - d) / (u - d)
	prob := (math.Exp(p.Rate*dt) - d) / (u - d)

	// 概率出界说明输入组合没有无套利解释
	// (教科书原始公式不做这个检查，这里显式报错而不是静默算出负概率价格)
	if prob < 0 || prob > 1 {
		return treeParams{}, ErrArithmeticDomain
	}

	return treeParams{
		dt:   dt,
		u:    u,
		d:    d,
		prob: prob,
		disc: math.Exp(-p.Rate * dt),
	}, nil
}

// payoff 行权收益
func payoff(kind OptionKind, price, strike float64) float64 {
	if kind == Call {
		return math.Max(price-strike, 0)
	}
	return math.Max(strike-price, 0)
}

// Price 二叉树定价
// 返回期权现值; 输入非法或数学退化时返回错误，不产生部分结果
func Price(p Params) (float64, error) {
	if err := p.validate(); err != nil {
		return 0, err
	}

	tp, err := derive(p)
	if err != nil {
		return 0, err
	}

	lattice := newLattice(p.Spot, p.Steps, tp.u, tp.d)

	// 到期层内在价值
	values := lattice.Terminal()
	for j := range values {
		values[j] = payoff(p.Kind, values[j], p.Strike)
	}

	// 逆向归纳
	// values[j] 在第 i 层表示节点 (i, j) 的期权价值，
	// 它的两个后继是 (i+1, j) 上涨和 (i+1, j+1) 下跌
	for i := p.Steps - 1; i >= 0; i-- {
		for j := 0; j <= i; j++ {
			cont := (tp.prob*values[j] + (1-tp.prob)*values[j+1]) * tp.disc

			if p.Style == American {
				// 美式: 和立即行权价值比较取大
				exercise := payoff(p.Kind, lattice.Node(i, j), p.Strike)
				cont = math.Max(cont, exercise)
			}

			values[j] = cont
		}
	}

	return values[0], nil
}

// BuildLattice 只构建价格格子，不定价
// 用于检查格子结构或单独观察价格路径
func BuildLattice(p Params) (*Lattice, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	tp, err := derive(p)
	if err != nil {
		return nil, err
	}
	return newLattice(p.Spot, p.Steps, tp.u, tp.d), nil
}
