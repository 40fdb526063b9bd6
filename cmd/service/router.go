package service

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moodlingo/moodlingo/app/core"
	"github.com/moodlingo/moodlingo/app/response"
	"github.com/moodlingo/moodlingo/cmd/service/handler"
	"github.com/moodlingo/moodlingo/cmd/service/middleware"
	"github.com/moodlingo/moodlingo/pkg/errors"
	"github.com/moodlingo/moodlingo/pkg/i18n"
	"github.com/moodlingo/moodlingo/pkg/metrics"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	core.HttpEngine().Run(core.Cfg().Addr)
}

func setupHttpRouter(s *handler.HttpSrv) {
	s.Engine.Use(gin.Recovery())
	s.Engine.GET("/metrics", metrics.GinHandler())

	s.Engine.Use(middleware.I18n(), middleware.AcceptLanguage(), response.NewResponse())
	s.Engine.Use(middleware.Metrics(s.Core.Metrics()), middleware.Cors)

	// 错误的 method 返回 405 而不是 404
	s.Engine.HandleMethodNotAllowed = true
	s.Engine.NoMethod(func(c *gin.Context) {
		response.APIError(c, errors.New("router.NoMethod", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusMethodNotAllowed))
	})

	apiV1 := s.Engine.Group("/api/v1")
	{
		apiV1.POST("/auth/session", s.CreateSession)
		apiV1.GET("/connect", middleware.AuthorizationFromQuery(s.Core), handler.Websocket(s.Core))

		authed := apiV1.Group("")
		authed.Use(middleware.Authorization(s.Core))

		authed.POST("/insight", s.GenerateInsight)
		authed.GET("/garden", s.GetGarden)

		journal := authed.Group("/journal")
		{
			journal.GET("/list", s.ListEntries)
			journal.GET("/entry/:id", s.GetEntry)
			// 两步删除：先弹确认，再执行或取消
			journal.POST("/entry/:id/delete", s.RequestDeleteEntry)
			journal.POST("/delete/confirm", s.ConfirmDeleteEntry)
			journal.POST("/delete/cancel", s.CancelDeleteEntry)
		}

		draft := authed.Group("/draft")
		{
			draft.GET("", s.GetDraft)
			draft.PUT("", s.UpdateDraft)
			draft.POST("/insight", s.RequestDraftInsight)
			draft.POST("/save", s.SaveDraft)
			draft.DELETE("", s.DiscardDraft)
		}
	}
}
