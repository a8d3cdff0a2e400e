package api

import (
	"net/http"

	"moneymanager/database"
	"moneymanager/middleware"
	"moneymanager/models"

	"github.com/gin-gonic/gin"
)

// BalanceResponse 余额汇总
// 余额不落库，总是由交易记录即时计算
type BalanceResponse struct {
	Balance      float64 `json:"balance" example:"700"`
	TotalIncome  float64 `json:"total_income" example:"1000"`
	TotalExpense float64 `json:"total_expense" example:"300"`
}

// GetBalance 获取当前用户的余额汇总
// @Summary 获取余额汇总
// @Description 统计当前用户的收入总和、支出总和与余额（收入减支出）
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Success 200 {object} BalanceResponse "获取成功"
// @Failure 401 {object} Response "未登录"
// @Router /api/transactions/balance [get]
func (h *TransactionHandler) GetBalance(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var totalIncome float64
	var totalExpense float64
	if err := database.DB.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ?", userID, models.TypeIncome).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalIncome).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "统计收入失败"))
		return
	}
	if err := database.DB.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ?", userID, models.TypeExpense).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalExpense).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "统计支出失败"))
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{
		Balance:      totalIncome - totalExpense,
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
	})
}

// MonthlySummary 获取按月汇总
// @Summary 获取月度收支汇总
// @Description 按月份（date 前 7 位）汇总收入、支出与结余。分组顺序为各月份在记录序列（按创建时间倒序）中首次出现的顺序
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.MonthlySummary "月度汇总列表"
// @Failure 401 {object} Response "未登录"
// @Router /api/transactions/summary [get]
func (h *TransactionHandler) MonthlySummary(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var list []models.Transaction
	if err := database.DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询交易记录失败"))
		return
	}

	result := models.SummarizeByMonth(list)
	if result == nil {
		result = []models.MonthlySummary{}
	}

	c.JSON(http.StatusOK, result)
}
