// 文件: cmd/demo/main.go
// 定价库演示程序
//
// 跑一遍教科书场景:
// 1. 二叉树 (欧式/美式, 波动率/涨跌幅两种参数化)
// 2. BSM 闭式解 + 希腊字母 + 隐含波动率反解
// 3. 债券: 定价、到期收益率、久期、凸性、应计利息
// 4. 远期定价与最小方差对冲
// 5. 利率互换估值 (债券差法 vs FRA 分解)
// 6. 定价服务端到端 (内存 Repository, 无需 MySQL/Redis)
//
// 设置 NATS_URL 环境变量后还会演示消息驱动模式:
// 向 pricing.requests 注入请求, 由队列消费者处理

package main

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"hull.com/pkg/binomial"
	"hull.com/pkg/bond"
	"hull.com/pkg/forward"
	"hull.com/pkg/nats"
	"hull.com/pkg/options"
	"hull.com/pkg/pricing"
	"hull.com/pkg/swap"
)

func main() {
	log.SetFlags(log.Ltime)

	demoBinomial()
	demoBlackScholes()
	demoBond()
	demoForward()
	demoSwap()
	demoService()

	if url := os.Getenv("NATS_URL"); url != "" {
		demoMessaging(url)
	}
}

// =============================================================================
// 1. 二叉树
// =============================================================================

func demoBinomial() {
	log.Println("===== 二叉树定价 =====")

	// 美式看跌, 2 步树 (Hull 教材例题)
	americanPut := binomial.Params{
		Kind:       binomial.Put,
		Style:      binomial.American,
		Spot:       50,
		Strike:     52,
		Rate:       0.05,
		Maturity:   2,
		Steps:      2,
		Volatility: 0.3,
	}
	price, err := binomial.Price(americanPut)
	if err != nil {
		log.Fatalf("binomial price: %v", err)
	}
	log.Printf("[Binomial] 美式看跌 (S=50 K=52 σ=0.3 T=2 N=2): %.4f", price)

	europeanPut := americanPut
	europeanPut.Style = binomial.European
	euro, _ := binomial.Price(europeanPut)
	log.Printf("[Binomial] 同参数欧式看跌: %.4f (提前行权溢价 %.4f)", euro, price-euro)

	// 涨跌幅参数化 (u=1.2, d=0.9)
	moveCall := binomial.Params{
		Kind:     binomial.Call,
		Style:    binomial.European,
		Spot:     100,
		Strike:   100,
		Rate:     0.05,
		Maturity: 1,
		Steps:    2,
		Up:       0.2,
		Down:     0.1,
	}
	call, _ := binomial.Price(moveCall)
	log.Printf("[Binomial] 涨跌幅参数化欧式看涨 (+20%%/-10%%): %.4f", call)

	// 细分时间步, 收敛到 BSM
	fine := binomial.Params{
		Kind: binomial.Call, Style: binomial.European,
		Spot: 100, Strike: 100, Rate: 0.05, Maturity: 1,
		Steps: 500, Volatility: 0.2,
	}
	converged, _ := binomial.Price(fine)
	log.Printf("[Binomial] N=500 欧式看涨: %.6f (BSM 闭式解 10.450584)", converged)
}

// =============================================================================
// 2. BSM 与隐含波动率
// =============================================================================

func demoBlackScholes() {
	log.Println("===== BSM 定价 =====")

	S, K, r, sigma, T := 100.0, 100.0, 0.05, 0.2, 1.0

	call, _ := options.PriceCallBS(S, K, r, sigma, T)
	put, _ := options.PricePutBS(S, K, r, sigma, T)
	log.Printf("[BSM] 平值看涨: %.6f, 平值看跌: %.6f", call, put)

	delta, _ := options.DeltaCall(S, K, r, sigma, T)
	gamma, _ := options.Gamma(S, K, r, sigma, T)
	vega, _ := options.Vega(S, K, r, sigma, T)
	log.Printf("[BSM] Delta=%.4f Gamma=%.4f Vega=%.4f", delta, gamma, vega)

	// 用市场价反解隐含波动率
	result, err := options.ImpliedVolCall(S, K, r, call, T)
	if err != nil {
		log.Fatalf("implied vol: %v", err)
	}
	log.Printf("[BSM] 隐含波动率: %.6f (迭代 %d 次, 收敛=%v)",
		result.Sigma, result.Iterations, result.Converged)
}

// =============================================================================
// 3. 债券
// =============================================================================

func demoBond() {
	log.Println("===== 债券分析 =====")

	b := bond.Bond{
		FaceValue:    1000,
		CouponRate:   0.06,
		Maturity:     5,
		Interval:     bond.IntervalAnnual,
		RiskFreeRate: 0.04,
		MarketPrice:  980,
	}

	price, _ := b.Price()
	log.Printf("[Bond] 无风险利率贴现价格: %.4f", price)

	ytm, err := b.MarketYTM()
	if err != nil {
		log.Fatalf("ytm: %v", err)
	}
	log.Printf("[Bond] 市场价 980 隐含到期收益率: %.6f", ytm)

	b.UseMarketYield()
	duration, _ := b.Duration()
	convexity, _ := b.Convexity()
	log.Printf("[Bond] 麦考利久期: %.4f, 凸性: %.4f", duration, convexity)

	// 收益率 +50bp 的价格变化估计
	est, _ := b.YieldChange(0.005, bond.ByConvexity)
	log.Printf("[Bond] 收益率+50bp: 估计价格 %.4f (收益率 %.4f%%)", est.NewPrice, est.Return*100)

	// 应计利息 (半年付息国债, ACT/ACT)
	prev := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	settle := time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC)
	next := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	accrued, _ := bond.AccruedInterest(4, prev, settle, next, bond.ActualActual)
	log.Printf("[Bond] 国债应计利息 (票息4, ACT/ACT): %.4f", accrued)
}

// =============================================================================
// 4. 远期与对冲
// =============================================================================

func demoForward() {
	log.Println("===== 远期与对冲 =====")

	f, _ := forward.Price(100, 0.05, 0.6)
	log.Printf("[Forward] 无收益资产远期价 (S=100 r=5%% T=0.6): %.4f", f)

	fy, _ := forward.PriceWithYield(100, 0.05, 0.02, 0.6)
	log.Printf("[Forward] 2%% 连续红利率远期价: %.4f", fy)

	plan, _ := forward.MinVarianceHedge(0.8, 0.02, 0.015, 1_000_000, 100_000)
	log.Printf("[Hedge] 最小方差对冲比率: %.4f, 合约数: %.2f", plan.Ratio, plan.Contracts)

	n, _ := forward.IndexHedgeContracts(1.2, 5_000_000, 250_000)
	log.Printf("[Hedge] β=1.2 组合指数对冲合约数: %.1f", n)
}

// =============================================================================
// 5. 利率互换
// =============================================================================

func demoSwap() {
	log.Println("===== 利率互换估值 =====")

	irs := swap.IRS{
		Notional:         100,
		FixedRate:        0.08,
		PayFixed:         false,
		PaymentTimes:     []float64{0.25, 0.75, 1.25},
		AccrualFractions: []float64{0.5, 0.5, 0.5},
		ZeroRates:        []float64{0.10, 0.105, 0.11},
		FloatingRate:     0.102,
	}

	value, err := irs.Value()
	if err != nil {
		log.Fatalf("swap value: %v", err)
	}
	fra, _ := irs.ValueFRA()
	log.Printf("[Swap] 债券差法估值: %.4f, FRA 分解估值: %.4f (两种方法严格相等)", value, fra)
}

// =============================================================================
// 6. 定价服务端到端
// =============================================================================

// demoRepo 内存 Repository, 演示用
type demoRepo struct {
	mu      sync.Mutex
	results map[int64]*pricing.PricingResult
}

func (r *demoRepo) Create(ctx context.Context, result *pricing.PricingResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[result.RequestID] = result
	return nil
}

func (r *demoRepo) GetByRequestID(ctx context.Context, requestID int64) (*pricing.PricingResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.results[requestID], nil
}

func (r *demoRepo) ListBySymbol(ctx context.Context, symbol string, limit int) ([]*pricing.PricingResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*pricing.PricingResult
	for _, res := range r.results {
		if res.Symbol == symbol {
			out = append(out, res)
		}
	}
	return out, nil
}

func demoService() {
	log.Println("===== 定价服务 =====")

	// 生产环境: MySQL Repository + Redis 缓存装饰器
	//   mysqlRepo := pricing.NewMySQLResultRepository(db)
	//   repo := pricing.NewCachedResultRepository(mysqlRepo, redisClient)
	repo := &demoRepo{results: make(map[int64]*pricing.PricingResult)}
	service := pricing.NewService(repo)

	ctx := context.Background()

	req := &pricing.PricingRequest{
		RequestID:  pricing.GenerateRequestID(),
		Symbol:     "DEMO-PUT",
		Model:      pricing.ModelBinomial,
		Side:       pricing.SidePut,
		Style:      pricing.StyleAmerican,
		Spot:       50,
		Strike:     52,
		Rate:       0.05,
		Maturity:   2,
		Steps:      2,
		Volatility: 0.3,
		Timestamp:  time.Now().UnixMilli(),
	}

	result, err := service.Handle(ctx, req)
	if err != nil {
		log.Fatalf("handle: %v", err)
	}
	log.Printf("[Service] request_id=%d status=%s price=%.4f",
		result.RequestID, result.Status, result.Price)

	// 非法请求走拒绝路径, 原因落库
	bad := *req
	bad.RequestID = pricing.GenerateRequestID()
	bad.Spot = -1
	rejected, _ := service.Handle(ctx, &bad)
	log.Printf("[Service] request_id=%d status=%s reason=%q",
		rejected.RequestID, rejected.Status, rejected.Reason)
}

// =============================================================================
// 7. 消息驱动模式 (需要本地 NATS)
// =============================================================================

func demoMessaging(natsURL string) {
	log.Println("===== 消息驱动定价 =====")

	repo := &demoRepo{results: make(map[int64]*pricing.PricingResult)}
	service := pricing.NewService(repo)

	// 结果不外发 Kafka (publisher 传 nil), 只演示请求消费
	consumer, err := pricing.NewRequestConsumer(service, natsURL, nil)
	if err != nil {
		log.Fatalf("create consumer: %v", err)
	}
	if err := consumer.Start(); err != nil {
		log.Fatalf("start consumer: %v", err)
	}
	defer consumer.Stop()

	publisher, err := nats.NewPublisher(natsURL)
	if err != nil {
		log.Fatalf("create publisher: %v", err)
	}
	defer publisher.Close()

	req := &pricing.PricingRequest{
		RequestID:  pricing.GenerateRequestID(),
		Symbol:     "DEMO-CALL",
		Model:      pricing.ModelBlackScholes,
		Side:       pricing.SideCall,
		Style:      pricing.StyleEuropean,
		Spot:       100,
		Strike:     100,
		Rate:       0.05,
		Maturity:   1,
		Volatility: 0.2,
		Timestamp:  time.Now().UnixMilli(),
	}
	if err := publisher.Publish(pricing.SubjectRequests, req); err != nil {
		log.Fatalf("publish request: %v", err)
	}
	publisher.Flush()

	// 等消费者处理
	time.Sleep(200 * time.Millisecond)

	result, err := service.GetResult(context.Background(), req.RequestID)
	if err != nil || result == nil {
		log.Printf("[Messaging] 结果未就绪: %v", err)
		return
	}
	log.Printf("[Messaging] request_id=%d status=%s price=%.6f",
		result.RequestID, result.Status, result.Price)
}
