// 文件: pkg/pricing/result_stream.go
// 定价结果流消费 - 下游 (风控、行情展示) 订阅 pricing.results

package pricing

import (
	"encoding/json"
	"fmt"

	"hull.com/pkg/kafka"
)

// ResultHandler 结果回调
type ResultHandler func(result *PricingResult) error

// ResultStream 定价结果流消费者
// 同一 groupID 的多个实例分摊分区
type ResultStream struct {
	consumer *kafka.Consumer
}

// NewResultStream 订阅结果流
func NewResultStream(brokers []string, groupID string, handler ResultHandler) (*ResultStream, error) {
	cfg := kafka.DefaultConsumerConfig(brokers, groupID, []string{TopicResults})

	consumer, err := kafka.NewConsumer(cfg, func(topic string, partition int32, offset int64, key, value []byte) error {
		var result PricingResult
		if err := json.Unmarshal(value, &result); err != nil {
			return fmt.Errorf("unmarshal result: %w", err)
		}
		return handler(&result)
	})
	if err != nil {
		return nil, err
	}

	return &ResultStream{consumer: consumer}, nil
}

// Start 启动消费
func (s *ResultStream) Start() {
	s.consumer.Start()
}

// Stop 停止消费
func (s *ResultStream) Stop() error {
	return s.consumer.Stop()
}
