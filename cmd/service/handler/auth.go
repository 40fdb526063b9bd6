package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/moodlingo/moodlingo/app/logic/v1"
	"github.com/moodlingo/moodlingo/app/response"
	"github.com/moodlingo/moodlingo/pkg/utils"
)

type CreateSessionRequest struct {
	CustomToken string `json:"custom_token" form:"custom_token"`
}

// CreateSession 建立会话：携带有效 token 则续期原身份，否则分配匿名身份
func (s *HttpSrv) CreateSession(c *gin.Context) {
	var (
		err error
		req CreateSessionRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	session, err := v1.NewAuthLogic(c, s.Core).CreateSession(req.CustomToken)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, session)
}
