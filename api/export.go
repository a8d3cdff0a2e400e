package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"moneymanager/database"
	"moneymanager/middleware"
	"moneymanager/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// loadAllTransactions 读取当前用户的全部交易记录，最新创建的在前
func loadAllTransactions(userID uint) ([]models.Transaction, error) {
	var list []models.Transaction
	err := database.DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	return list, err
}

// ExportJSON 导出交易记录为 JSON 文件
// @Summary 导出交易记录为 JSON
// @Description 导出当前用户的全部交易记录，格式与批量导入接口对称，可直接重新导入
// @Tags 导出
// @Produce json
// @Security BearerAuth
// @Success 200 {file} file "JSON 文件"
// @Failure 401 {object} Response "未登录"
// @Router /api/transactions/export [get]
func (h *TransactionHandler) ExportJSON(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	list, err := loadAllTransactions(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询交易记录失败"))
		return
	}

	records := make([]TransactionRecord, 0, len(list))
	for _, t := range list {
		records = append(records, TransactionRecord{
			ID:            t.ID,
			Type:          t.Type,
			Amount:        t.Amount,
			Description:   t.Description,
			Date:          t.Date,
			FormattedDate: t.FormattedDate,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		InternalError(c, "生成 JSON 失败")
		return
	}

	filename := fmt.Sprintf("transactions_%s.json", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// ExportCSV 导出交易记录为 CSV
// @Summary 导出交易记录为 CSV
// @Description 导出当前用户的全部交易记录为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {file} file "CSV 文件"
// @Failure 401 {object} Response "未登录"
// @Router /api/transactions/export/csv [get]
func (h *TransactionHandler) ExportCSV(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	list, err := loadAllTransactions(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询交易记录失败"))
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	// 写入表头
	headers := []string{"ID", "类型", "金额", "描述", "日期", "创建时间"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	// 写入数据
	for _, t := range list {
		typeText := "支出"
		if t.Type == models.TypeIncome {
			typeText = "收入"
		}
		row := []string{
			fmt.Sprintf("%d", t.ID),
			typeText,
			fmt.Sprintf("%.2f", t.Amount),
			t.Description,
			t.Date,
			t.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("transactions_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出交易记录为 Excel
// @Summary 导出交易记录为 Excel
// @Description 导出当前用户的全部交易记录为带汇总行的 xlsx 文件
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "Excel 文件"
// @Failure 401 {object} Response "未登录"
// @Failure 500 {object} Response "生成 Excel 失败"
// @Router /api/transactions/export/excel [get]
func (h *TransactionHandler) ExportExcel(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	list, err := loadAllTransactions(userID)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询交易记录失败"))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "交易记录"
	f.SetSheetName("Sheet1", sheetName)

	// 设置表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 数据样式
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 10)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 30)
	f.SetColWidth(sheetName, "E", "E", 15)
	f.SetColWidth(sheetName, "F", "F", 20)

	// 写入表头
	headers := []string{"ID", "类型", "金额", "描述", "日期", "创建时间"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	// 写入数据
	var totalIncome, totalExpense float64
	for i, t := range list {
		row := i + 2
		typeText := "支出"
		if t.Type == models.TypeIncome {
			typeText = "收入"
			totalIncome += t.Amount
		} else {
			totalExpense += t.Amount
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), t.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), typeText)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), t.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), t.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), t.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), t.CreatedAt.Format("2006-01-02 15:04:05"))
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), dataStyle)
	}

	// 添加汇总行
	summaryRow := len(list) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "合计")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", summaryRow), fmt.Sprintf("共 %d 条", len(list)))
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow),
		fmt.Sprintf("收入 %.2f / 支出 %.2f", totalIncome, totalExpense))
	f.MergeCell(sheetName, fmt.Sprintf("C%d", summaryRow), fmt.Sprintf("E%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", summaryRow), fmt.Sprintf("余额 %.2f", totalIncome-totalExpense))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("F%d", summaryRow), summaryStyle)

	filename := fmt.Sprintf("transactions_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
}
