package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/moodlingo/moodlingo/app/logic/v1"
	"github.com/moodlingo/moodlingo/app/response"
	"github.com/moodlingo/moodlingo/pkg/utils"
)

type ListEntriesRequest struct {
	Filter string `json:"filter" form:"filter"`
}

func (s *HttpSrv) ListEntries(c *gin.Context) {
	var (
		err error
		req ListEntriesRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	list, total, err := v1.NewEntryLogic(c, s.Core).ListEntries(req.Filter)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, gin.H{
		"list":  list,
		"total": total,
	})
}

func (s *HttpSrv) GetEntry(c *gin.Context) {
	id, _ := c.Params.Get("id")

	entry, err := v1.NewEntryLogic(c, s.Core).GetEntry(id)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, entry)
}

// RequestDeleteEntry 删除的第一步：弹出确认，拿到待确认 token
func (s *HttpSrv) RequestDeleteEntry(c *gin.Context) {
	id, _ := c.Params.Get("id")

	prompt, err := v1.NewEntryLogic(c, s.Core).RequestDelete(id)
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, prompt)
}

type ResolveDeleteRequest struct {
	Token string `json:"token" form:"token" binding:"required"`
}

// ConfirmDeleteEntry 删除的第二步：确认后真正删除
func (s *HttpSrv) ConfirmDeleteEntry(c *gin.Context) {
	var (
		err error
		req ResolveDeleteRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewEntryLogic(c, s.Core).ConfirmDelete(req.Token); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}

func (s *HttpSrv) CancelDeleteEntry(c *gin.Context) {
	var (
		err error
		req ResolveDeleteRequest
	)
	if err = utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if err = v1.NewEntryLogic(c, s.Core).CancelDelete(req.Token); err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, nil)
}
