// 文件: pkg/pricing/model.go
// 定价请求与定价结果模型

package pricing

import "time"

// =============================================================================
// 模型类型
// =============================================================================

// ModelKind 定价模型
type ModelKind string

const (
	ModelBinomial     ModelKind = "BINOMIAL"      // 二叉树 (支持美式)
	ModelBlackScholes ModelKind = "BLACK_SCHOLES" // BSM 闭式解 (仅欧式)
)

// =============================================================================
// 期权方向与行权方式
// =============================================================================

type OptionSide string

const (
	SideCall OptionSide = "CALL"
	SidePut  OptionSide = "PUT"
)

type ExerciseStyle string

const (
	StyleEuropean ExerciseStyle = "EUROPEAN"
	StyleAmerican ExerciseStyle = "AMERICAN"
)

// =============================================================================
// PricingRequest - 定价请求 (消息载荷, 不落库)
// =============================================================================

type PricingRequest struct {
	RequestID int64         `json:"request_id"` // 雪花ID
	Symbol    string        `json:"symbol"`     // 标的标识
	Model     ModelKind     `json:"model"`
	Side      OptionSide    `json:"side"`
	Style     ExerciseStyle `json:"style"`

	// 合约与市场参数
	Spot     float64 `json:"spot"`
	Strike   float64 `json:"strike"`
	Rate     float64 `json:"rate"`     // 连续复利
	Maturity float64 `json:"maturity"` // 年

	// 二叉树专用
	Steps int     `json:"steps,omitempty"`
	Up    float64 `json:"up,omitempty"`   // 单步上涨百分比 (与波动率互斥)
	Down  float64 `json:"down,omitempty"` // 单步下跌百分比

	// 波动率 (两种模型通用)
	Volatility float64 `json:"volatility,omitempty"`

	Timestamp int64 `json:"timestamp"`
}

// =============================================================================
// 结果状态
// =============================================================================

type ResultStatus int8

const (
	StatusPriced   ResultStatus = iota + 1 // 定价成功
	StatusRejected                         // 参数被拒绝
)

func (s ResultStatus) String() string {
	switch s {
	case StatusPriced:
		return "PRICED"
	case StatusRejected:
		return "REJECTED"
	}
	return "UNKNOWN"
}

// =============================================================================
// PricingResult - 定价结果 (落库)
// =============================================================================

type PricingResult struct {
	ID        uint  `gorm:"primaryKey;autoIncrement"`
	RequestID int64 `gorm:"column:request_id;uniqueIndex"`

	Symbol string       `gorm:"column:symbol;type:varchar(32);index"`
	Model  ModelKind    `gorm:"column:model;type:varchar(16)"`
	Status ResultStatus `gorm:"column:status;index"`

	Price  float64 `gorm:"column:price"`
	Reason string  `gorm:"column:reason;type:varchar(255)"` // 拒绝原因, 成功时为空

	CreatedAt int64 `gorm:"column:created_at;index"`
}

func (PricingResult) TableName() string {
	return "pricing_results"
}

func (r *PricingResult) IsPriced() bool {
	return r.Status == StatusPriced
}

// NewPricedResult 成功结果
func NewPricedResult(req *PricingRequest, price float64) *PricingResult {
	return &PricingResult{
		RequestID: req.RequestID,
		Symbol:    req.Symbol,
		Model:     req.Model,
		Status:    StatusPriced,
		Price:     price,
		CreatedAt: time.Now().UnixMilli(),
	}
}

// NewRejectedResult 拒绝结果
// 显式记录拒绝原因, 调用方不会把缺失的价格误当成零价
func NewRejectedResult(req *PricingRequest, reason string) *PricingResult {
	return &PricingResult{
		RequestID: req.RequestID,
		Symbol:    req.Symbol,
		Model:     req.Model,
		Status:    StatusRejected,
		Reason:    reason,
		CreatedAt: time.Now().UnixMilli(),
	}
}
