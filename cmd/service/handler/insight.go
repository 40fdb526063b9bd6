package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/moodlingo/moodlingo/app/logic/v1"
	"github.com/moodlingo/moodlingo/app/response"
	"github.com/moodlingo/moodlingo/pkg/utils"
)

type GenerateInsightRequest struct {
	// Title 随内容一起提交但不参与 prompt
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
}

func (s *HttpSrv) GenerateInsight(c *gin.Context) {
	var (
		err error
		req GenerateInsightRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	insight, err := v1.NewInsightLogic(c, s.Core).GenerateInsight(req.Content)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, gin.H{
		"insight": insight,
	})
}
