package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateMeeting(c *ginext.Context)
	ChangeMeetingStatus(c *ginext.Context)
	ListApproved(c *ginext.Context)
	ListPending(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.POST("/meetings", h.CreateMeeting)
		api.POST("/meetings/:id/status", h.ChangeMeetingStatus)
		api.GET("/meetings/approved", h.ListApproved)
		api.GET("/meetings/pending", h.ListPending)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
