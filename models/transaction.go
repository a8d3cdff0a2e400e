package models

import (
	"time"
)

// 交易类型，只允许这两个值
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// DefaultDescription 描述为空时使用的通用标签
const DefaultDescription = "日常收支"

// Transaction 交易记录模型
// 记录创建后不可修改，只能通过整体重置删除（硬删除，不做软删除）
type Transaction struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"userId" gorm:"index;not null"`
	Type          string    `json:"type" gorm:"size:10;not null"` // income / expense
	Amount        float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	Description   string    `json:"description" gorm:"size:255;not null"`
	Date          string    `json:"date" gorm:"size:10;not null"` // YYYY-MM-DD
	FormattedDate string    `json:"formattedDate" gorm:"size:50"` // 缓存的本地化展示字符串，非权威数据
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	User          User      `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}

// IsValidType 判断交易类型是否合法
func IsValidType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}

// SumBalance 计算余额：收入求和减去支出求和
func SumBalance(list []Transaction) float64 {
	var balance float64
	for _, t := range list {
		if t.Type == TypeIncome {
			balance += t.Amount
		} else {
			balance -= t.Amount
		}
	}
	return balance
}

// MonthlySummary 按月汇总结果
type MonthlySummary struct {
	Month   string  `json:"month" example:"2025-04"` // YYYY-MM
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// SummarizeByMonth 按月份（date 前 7 位）汇总收入与支出
// 分组顺序为各月份在输入序列中首次出现的顺序，不做时间排序
func SummarizeByMonth(list []Transaction) []MonthlySummary {
	index := make(map[string]int)
	var result []MonthlySummary
	for _, t := range list {
		if len(t.Date) < 7 {
			continue
		}
		month := t.Date[:7]
		i, ok := index[month]
		if !ok {
			i = len(result)
			index[month] = i
			result = append(result, MonthlySummary{Month: month})
		}
		if t.Type == TypeIncome {
			result[i].Income += t.Amount
		} else {
			result[i].Expense += t.Amount
		}
		result[i].Balance = result[i].Income - result[i].Expense
	}
	return result
}
