// 文件: pkg/pricing/consumer.go
// 定价请求消费者 - 监听报价网关发来的定价请求
// 使用 NATS (轻量级替代 Kafka)

package pricing

import (
	"context"
	"encoding/json"
	"log"

	"hull.com/pkg/nats"
)

// =============================================================================
// 主题约定
// =============================================================================

const (
	// SubjectRequests 定价请求主题
	SubjectRequests = "pricing.requests"

	// 队列组; 同组多实例负载均衡
	consumerQueue = "pricing-service"
)

// =============================================================================
// RequestConsumer - 定价请求消费者
// =============================================================================

type RequestConsumer struct {
	service    *Service
	subscriber *nats.Subscriber
	publisher  *ResultPublisher // 可为 nil, 则只落库不外发
}

// NewRequestConsumer 创建请求消费者
// publisher 可传 nil 表示不向下游广播结果
func NewRequestConsumer(service *Service, natsURL string, publisher *ResultPublisher) (*RequestConsumer, error) {
	rc := &RequestConsumer{
		service:   service,
		publisher: publisher,
	}

	subscriber, err := nats.NewSubscriber(natsURL, rc.handleMessage)
	if err != nil {
		return nil, err
	}

	rc.subscriber = subscriber
	return rc, nil
}

// Start 启动消费 (队列订阅，支持多实例负载均衡)
func (c *RequestConsumer) Start() error {
	return c.subscriber.SubscribeQueue(SubjectRequests, consumerQueue)
}

// Stop 停止消费
func (c *RequestConsumer) Stop() error {
	return c.subscriber.Close()
}

// handleMessage 处理消息
func (c *RequestConsumer) handleMessage(subject string, data []byte) error {
	if subject != SubjectRequests {
		return nil
	}
	return c.handleRequest(context.Background(), data)
}

// handleRequest 处理一条定价请求
func (c *RequestConsumer) handleRequest(ctx context.Context, data []byte) error {
	var req PricingRequest
	if err := json.Unmarshal(data, &req); err != nil {
		log.Printf("[Pricing] unmarshal request error: %v", err)
		return err
	}

	if req.RequestID == 0 {
		req.RequestID = GenerateRequestID()
	}

	result, err := c.service.Handle(ctx, &req)
	if err != nil && result == nil {
		// 基础设施错误 (落库失败等), 返回错误让上层记录
		log.Printf("[Pricing] handle request error: request_id=%d, err=%v", req.RequestID, err)
		return err
	}
	// 模型拒绝不算消费失败: 拒绝记录已落库, 继续外发

	if c.publisher != nil {
		if err := c.publisher.Publish(result); err != nil {
			log.Printf("[Pricing] publish result error: request_id=%d, err=%v", result.RequestID, err)
		}
	}

	return nil
}
