package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/moodlingo/moodlingo/app/logic/v1"
	"github.com/moodlingo/moodlingo/app/response"
)

// GetGarden 返回最近一周的情绪植物，按日期从旧到新
func (s *HttpSrv) GetGarden(c *gin.Context) {
	plants, err := v1.NewGardenLogic(c, s.Core).ListGarden()
	if err != nil {
		response.APIError(c, err)
		return
	}
	response.APISuccess(c, gin.H{
		"plants": plants,
	})
}
