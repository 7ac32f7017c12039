package router

import (
	"github.com/gin-gonic/gin"

	"stockchart/internal/feature/pricechart/transport/handler"
	platformhandler "stockchart/internal/platform/http/handler"
	"stockchart/internal/web"
)

// NewRouter はテンプレートと全ルートを登録したginエンジンを生成します。
func NewRouter(chart *handler.ChartHandler) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(web.Templates())

	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)
	r.OPTIONS("/healthz", platformhandler.Health)

	// 入力フォーム
	r.GET("/", chart.Index)
	// チャート表示（GETはフォームへ戻す）
	r.GET("/info", chart.RedirectToIndex)
	r.POST("/info", chart.Info)

	return r
}
