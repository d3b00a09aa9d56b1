// 文件: pkg/pricing/publisher.go
// 定价结果 Kafka 发布者
// 下游 (风控、报价展示) 订阅 pricing.results 主题获取结果流

package pricing

import (
	"encoding/json"
	"strconv"

	"hull.com/pkg/kafka"
)

// TopicResults 定价结果主题
const TopicResults = "pricing.results"

// =============================================================================
// ResultMessage - 实现 kafka.Message 接口
// =============================================================================

type ResultMessage struct {
	result *PricingResult
}

// Topic 目标 topic
func (m *ResultMessage) Topic() string {
	return TopicResults
}

// Key 按标的分区, 同一标的的结果保证顺序
func (m *ResultMessage) Key() string {
	if m.result.Symbol != "" {
		return m.result.Symbol
	}
	return strconv.FormatInt(m.result.RequestID, 10)
}

// Value 序列化消息体
func (m *ResultMessage) Value() ([]byte, error) {
	return json.Marshal(m.result)
}

// =============================================================================
// ResultPublisher - 结果发布者
// =============================================================================

type ResultPublisher struct {
	producer *kafka.Producer
}

// NewResultPublisher 创建结果发布者
func NewResultPublisher(brokers []string) (*ResultPublisher, error) {
	producer, err := kafka.NewProducer(kafka.DefaultProducerConfig(brokers))
	if err != nil {
		return nil, err
	}
	return &ResultPublisher{producer: producer}, nil
}

// Publish 发布结果 (异步)
func (p *ResultPublisher) Publish(result *PricingResult) error {
	return p.producer.Send(&ResultMessage{result: result})
}

// Stats 发送统计
func (p *ResultPublisher) Stats() kafka.ProducerStats {
	return p.producer.Stats()
}

// Close 关闭发布者
func (p *ResultPublisher) Close() error {
	return p.producer.Close()
}
