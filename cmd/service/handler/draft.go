package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/moodlingo/moodlingo/app/logic/v1"
	"github.com/moodlingo/moodlingo/app/response"
	"github.com/moodlingo/moodlingo/pkg/utils"
)

func (s *HttpSrv) GetDraft(c *gin.Context) {
	response.APISuccess(c, v1.NewDraftLogic(c, s.Core).GetDraft())
}

type UpdateDraftRequest struct {
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
}

func (s *HttpSrv) UpdateDraft(c *gin.Context) {
	var (
		err error
		req UpdateDraftRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, v1.NewDraftLogic(c, s.Core).UpdateDraft(req.Title, req.Content))
}

// RequestDraftInsight 后台生成 insight，草稿继续可编辑；结果通过后续 GetDraft 可见
func (s *HttpSrv) RequestDraftInsight(c *gin.Context) {
	view, err := v1.NewDraftLogic(c, s.Core).RequestDraftInsight()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, view)
}

func (s *HttpSrv) SaveDraft(c *gin.Context) {
	entry, err := v1.NewDraftLogic(c, s.Core).SaveDraft()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, entry)
}

func (s *HttpSrv) DiscardDraft(c *gin.Context) {
	v1.NewDraftLogic(c, s.Core).DiscardDraft()
	response.APISuccess(c, nil)
}
