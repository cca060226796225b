package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/errorpool/domain"
	"github.com/Guyuepp/errorpool/internal/rest/response"
)

type LikeHandler struct {
	Service domain.LikeUsecase
}

func NewLikeHandler(svc domain.LikeUsecase) *LikeHandler {
	return &LikeHandler{
		Service: svc,
	}
}

// Toggle likes the article if the user has not, otherwise takes the like back
func (l *LikeHandler) Toggle(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}
	user, ok := currentUser(c)
	if !ok {
		return
	}

	res, err := l.Service.Toggle(c.Request.Context(), id, user)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.Like{ArticleID: id, Liked: res.Liked, Likes: res.Likes})
}

func (l *LikeHandler) Count(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	count, err := l.Service.CountLikes(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"article_id": id, "likes": count})
}

// Status tells whether the current user likes the article
func (l *LikeHandler) Status(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}
	user, ok := currentUser(c)
	if !ok {
		return
	}

	liked, err := l.Service.IsLiked(c.Request.Context(), id, user)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"article_id": id, "liked": liked})
}
