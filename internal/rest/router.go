package rest

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts every handler on route. auth guards the mutating endpoints.
func RegisterRoutes(route *gin.Engine, articles *ArticleHandler, likes *LikeHandler, ranks *RankHandler, auth gin.HandlerFunc) {
	route.GET("/articles", articles.FetchArticle)
	route.GET("/articles/:id", articles.GetByID)
	route.GET("/articles/:id/likes", likes.Count)

	route.GET("/articles/ranks", ranks.TopGlobal)
	route.GET("/skills/:skill/ranks", ranks.TopInSkill)

	authorized := route.Group("/")
	authorized.Use(auth)
	{
		authorized.GET("/articles/mine", articles.FetchMine)
		authorized.POST("/articles", articles.Store)
		authorized.PUT("/articles/:id", articles.Update)
		authorized.DELETE("/articles/:id", articles.Delete)
		authorized.POST("/articles/:id/like", likes.Toggle)
		authorized.GET("/articles/:id/like", likes.Status)
	}
}
