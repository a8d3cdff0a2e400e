package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"moneymanager/database"
	"moneymanager/middleware"
	"moneymanager/models"

	"github.com/gin-gonic/gin"
)

// TransactionHandler 交易记录处理器
type TransactionHandler struct{}

// NewTransactionHandler 创建交易记录处理器
func NewTransactionHandler() *TransactionHandler {
	return &TransactionHandler{}
}

// CreateTransactionRequest 创建交易请求
type CreateTransactionRequest struct {
	Type          string  `json:"type" binding:"required" example:"income"` // income / expense
	Amount        float64 `json:"amount" binding:"required,gt=0" example:"1000"`
	Description   string  `json:"description" binding:"required,max=255" example:"四月工资"`
	Date          string  `json:"date" binding:"required" example:"2025-04-01"` // YYYY-MM-DD
	FormattedDate string  `json:"formattedDate" binding:"omitempty,max=50"`
	UserID        uint    `json:"userId" binding:"required" example:"1"`
}

// TransactionRecord 导入/导出交换格式中的单条记录
// 与导出文件对称：重新导入时 id 由服务端重新分配
type TransactionRecord struct {
	ID            uint    `json:"id,omitempty"`
	Type          string  `json:"type"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
	Date          string  `json:"date"`
	FormattedDate string  `json:"formattedDate,omitempty"`
}

// requireOwnUser 校验 userId 参数并与会话中的用户比对
// 缺失返回 400；与会话用户不一致返回 403，不信任调用方自报的身份
func requireOwnUser(c *gin.Context) (uint, bool) {
	sessionUserID := middleware.GetCurrentUserID(c)

	param := c.Query("userId")
	if param == "" {
		BadRequest(c, "缺少 userId 参数")
		return 0, false
	}
	id, err := strconv.ParseUint(param, 10, 32)
	if err != nil {
		BadRequest(c, "userId 参数无效")
		return 0, false
	}
	if uint(id) != sessionUserID {
		Forbidden(c, "无权访问其他用户的数据")
		return 0, false
	}
	return sessionUserID, true
}

// parseDate 校验 YYYY-MM-DD 格式的日期
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// formatDisplayDate 根据 date 生成缓存的展示字符串
// 仅用于展示层，权威数据始终是 date 本身
func formatDisplayDate(date string) string {
	t, err := parseDate(date)
	if err != nil {
		return date
	}
	weekdays := []string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}
	return fmt.Sprintf("%d年%d月%d日(%s)", t.Year(), int(t.Month()), t.Day(), weekdays[t.Weekday()])
}

// List 获取当前用户的全部交易记录
// @Summary 获取交易记录列表
// @Description 返回指定用户的全部交易记录，按创建时间倒序（最新在前）
// @Tags 交易
// @Produce json
// @Security BearerAuth
// @Param userId query int true "用户ID（必须与当前会话一致）"
// @Success 200 {array} models.Transaction "交易记录列表"
// @Failure 400 {object} Response "缺少 userId 参数"
// @Failure 401 {object} Response "未登录"
// @Failure 403 {object} Response "无权访问其他用户的数据"
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	userID, ok := requireOwnUser(c)
	if !ok {
		return
	}

	var list []models.Transaction
	if err := database.DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询交易记录失败"))
		return
	}
	if list == nil {
		list = []models.Transaction{}
	}

	c.JSON(http.StatusOK, list)
}

// Create 创建交易记录
// @Summary 创建交易记录
// @Description 新增一条收入或支出记录，返回服务端分配了 id 的记录
// @Tags 交易
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransactionRequest true "交易信息"
// @Success 200 {object} models.Transaction "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未登录"
// @Failure 403 {object} Response "无权为其他用户创建记录"
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	sessionUserID := middleware.GetCurrentUserID(c)

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	if !models.IsValidType(req.Type) {
		BadRequest(c, "交易类型无效，只支持 income 或 expense")
		return
	}
	if _, err := parseDate(req.Date); err != nil {
		BadRequest(c, "日期格式错误，应为: 2006-01-02")
		return
	}
	if req.UserID != sessionUserID {
		Forbidden(c, "无权为其他用户创建记录")
		return
	}

	formattedDate := req.FormattedDate
	if formattedDate == "" {
		formattedDate = formatDisplayDate(req.Date)
	}

	tx := models.Transaction{
		UserID:        sessionUserID,
		Type:          req.Type,
		Amount:        req.Amount,
		Description:   req.Description,
		Date:          req.Date,
		FormattedDate: formattedDate,
	}
	if err := database.DB.Create(&tx).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建交易记录失败"))
		return
	}

	c.JSON(http.StatusOK, tx)
}

// DeleteAll 重置：删除当前用户的全部交易记录
// @Summary 删除全部交易记录
// @Description 硬删除指定用户的所有交易记录，不可恢复。重复调用仍返回成功
// @Tags 交易
// @Produce json
// @Security BearerAuth
// @Param userId query int true "用户ID（必须与当前会话一致）"
// @Success 200 {object} map[string]string "删除成功"
// @Failure 400 {object} Response "缺少 userId 参数"
// @Failure 401 {object} Response "未登录"
// @Failure 403 {object} Response "无权删除其他用户的数据"
// @Router /api/transactions [delete]
func (h *TransactionHandler) DeleteAll(c *gin.Context) {
	userID, ok := requireOwnUser(c)
	if !ok {
		return
	}

	if err := database.DB.Where("user_id = ?", userID).
		Delete(&models.Transaction{}).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除交易记录失败"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "交易数据已全部删除"})
}

// Import 批量导入交易记录
// @Summary 批量导入交易记录
// @Description 导入 JSON 数组格式的交易记录。全部记录校验通过后在一个数据库事务内写入：任何一条非法则整批失败，不会留下部分导入的数据
// @Tags 交易
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body []TransactionRecord true "交易记录数组"
// @Success 200 {object} map[string]interface{} "导入成功"
// @Failure 400 {object} Response "数据格式错误"
// @Failure 401 {object} Response "未登录"
// @Router /api/transactions/import [post]
func (h *TransactionHandler) Import(c *gin.Context) {
	sessionUserID := middleware.GetCurrentUserID(c)

	var records []TransactionRecord
	if err := c.ShouldBindJSON(&records); err != nil {
		BadRequest(c, "数据格式错误，应为交易记录数组")
		return
	}
	if len(records) == 0 {
		BadRequest(c, "导入数据为空")
		return
	}

	// 先整体校验，再落库：避免部分导入
	list := make([]models.Transaction, 0, len(records))
	for i, r := range records {
		if !models.IsValidType(r.Type) {
			BadRequest(c, fmt.Sprintf("第 %d 条记录交易类型无效", i+1))
			return
		}
		if r.Amount <= 0 {
			BadRequest(c, fmt.Sprintf("第 %d 条记录金额必须大于 0", i+1))
			return
		}
		if _, err := parseDate(r.Date); err != nil {
			BadRequest(c, fmt.Sprintf("第 %d 条记录日期格式错误", i+1))
			return
		}
		description := r.Description
		if description == "" {
			description = models.DefaultDescription
		}
		formattedDate := r.FormattedDate
		if formattedDate == "" {
			formattedDate = formatDisplayDate(r.Date)
		}
		list = append(list, models.Transaction{
			UserID:        sessionUserID,
			Type:          r.Type,
			Amount:        r.Amount,
			Description:   description,
			Date:          r.Date,
			FormattedDate: formattedDate,
		})
	}

	if err := database.DB.Create(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "导入交易记录失败"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("成功导入 %d 条交易记录", len(list)),
		"count":   len(list),
	})
}
