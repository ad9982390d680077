package api

import "github.com/Apricot-S/shanten-algorithm-collection/common/http"

// RegisterRoutes 注册所有路由
func RegisterRoutes(server *http.HttpServer, svc *Service) {
	server.GET("/ping", PingHandler)

	v1 := server.Group("/api/v1")
	{
		v1.GET("/engines", svc.EnginesHandler)
		v1.POST("/shanten", svc.ShantenHandler)
		v1.POST("/shanten/compare", svc.CompareHandler)
	}
}
