// 文件: pkg/bond/accrual.go
// 应计利息与计天惯例 (day count convention)
//
// 不同市场数天的规则不同:
//   - ACT/ACT: 国债惯例, 按实际天数占付息周期实际天数的比例
//   - 30/360:  公司债/市政债惯例, 每月按 30 天、每年按 360 天
//   - ACT/360: 货币市场惯例
//
// 应计利息 = 单期票息 * 上次付息日以来的天数 / 付息周期天数

package bond

import (
	"errors"
	"time"
)

// ErrInvalidDayCount 不支持的计天惯例或日期顺序错误
var ErrInvalidDayCount = errors.New("bond: invalid day count")

// DayCount 计天惯例
type DayCount int8

const (
	ActualActual DayCount = iota + 1 // 实际/实际 (国债)
	Thirty360                        // 30/360 (公司债)
	Actual360                        // 实际/360 (货币市场)
	Actual365F                       // 实际/365 固定
)

func (dc DayCount) String() string {
	switch dc {
	case ActualActual:
		return "ACT/ACT"
	case Thirty360:
		return "30/360"
	case Actual360:
		return "ACT/360"
	case Actual365F:
		return "ACT/365F"
	}
	return "UNKNOWN"
}

// days 按惯例计算 start 到 end 的天数
func days(start, end time.Time, dc DayCount) (float64, error) {
	switch dc {
	case ActualActual, Actual360, Actual365F:
		return end.Sub(start).Hours() / 24, nil
	case Thirty360:
		// 每月按 30 天, 日数截断到 30
		d1 := start.Day()
		if d1 > 30 {
			d1 = 30
		}
		d2 := end.Day()
		if d2 > 30 {
			d2 = 30
		}
		y1, m1 := start.Year(), int(start.Month())
		y2, m2 := end.Year(), int(end.Month())
		return float64(360*(y2-y1) + 30*(m2-m1) + (d2 - d1)), nil
	}
	return 0, ErrInvalidDayCount
}

// YearFraction 按惯例计算两个日期间的年化比例
// ACT/ACT 没有固定分母, 不支持; 用 AccruedInterest 做周期内比例
func YearFraction(start, end time.Time, dc DayCount) (float64, error) {
	n, err := days(start, end, dc)
	if err != nil {
		return 0, err
	}

	switch dc {
	case Actual360, Thirty360:
		return n / 360, nil
	case Actual365F:
		return n / 365, nil
	}
	return 0, ErrInvalidDayCount
}

// AccruedInterest 结算日的应计利息
// couponAmount: 单期票息金额
// prevCoupon / nextCoupon: 上次和下次付息日, settlement 必须落在两者之间
func AccruedInterest(couponAmount float64, prevCoupon, settlement, nextCoupon time.Time, dc DayCount) (float64, error) {
	if settlement.Before(prevCoupon) || settlement.After(nextCoupon) || !prevCoupon.Before(nextCoupon) {
		return 0, ErrInvalidDayCount
	}

	elapsed, err := days(prevCoupon, settlement, dc)
	if err != nil {
		return 0, err
	}
	period, err := days(prevCoupon, nextCoupon, dc)
	if err != nil {
		return 0, err
	}
	if period == 0 {
		return 0, ErrInvalidDayCount
	}

	return couponAmount * elapsed / period, nil
}
