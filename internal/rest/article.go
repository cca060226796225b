package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/errorpool/domain"
	"github.com/Guyuepp/errorpool/internal/rest/middleware"
	"github.com/Guyuepp/errorpool/internal/rest/request"
	"github.com/Guyuepp/errorpool/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// ArticleHandler  represent the httphandler for article
type ArticleHandler struct {
	Service domain.ArticleUsecase
}

func NewArticleHandler(svc domain.ArticleUsecase) *ArticleHandler {
	return &ArticleHandler{
		Service: svc,
	}
}

// GetByID will get article by given id
func (a *ArticleHandler) GetByID(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}

	art, err := a.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewArticleFromDomain(&art))
}

// FetchArticle lists the articles of one skill and category
func (a *ArticleHandler) FetchArticle(c *gin.Context) {
	skillID, err1 := strconv.Atoi(c.Query("skill"))
	categoryID, err2 := strconv.Atoi(c.Query("category"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "query params 'skill' and 'category' are required"})
		return
	}

	listAr, err := a.Service.FetchBySkillAndCategory(c.Request.Context(), skillID, categoryID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewArticlesFromDomain(listAr))
}

// FetchMine returns the latest articles of the current user
func (a *ArticleHandler) FetchMine(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	listAr, err := a.Service.FetchByAuthor(c.Request.Context(), user)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewArticlesFromDomain(listAr))
}

// Store will store the article by given request body
func (a *ArticleHandler) Store(c *gin.Context) {
	var req request.Article
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	user, ok := currentUser(c)
	if !ok {
		return
	}

	article := req.ToDomain()
	article.User = user
	if err := a.Service.Store(c.Request.Context(), &article); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewArticleFromDomain(&article))
}

// Update applies a partial update, only the author may do it
func (a *ArticleHandler) Update(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}
	var req request.ArticlePatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	user, ok := currentUser(c)
	if !ok {
		return
	}

	art, err := a.Service.Update(c.Request.Context(), id, req.ToDomain(), user)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewArticleFromDomain(&art))
}

// Delete will delete the article by given param
func (a *ArticleHandler) Delete(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		return
	}
	user, ok := currentUser(c)
	if !ok {
		return
	}

	if err := a.Service.Delete(c.Request.Context(), id, user); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// articleID 解析路径参数 :id, 非法 id 视为不存在
func articleID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return 0, false
	}
	return id, true
}

func currentUser(c *gin.Context) (domain.User, bool) {
	uid, ok := c.Get(middleware.ContextUserID)
	if !ok {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: "user not authenticated"})
		return domain.User{}, false
	}
	return domain.User{ID: uid.(int64), Name: c.GetString(middleware.ContextUserName)}, true
}

// getStatusCode will get the code of the error from the usecases
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrUnknownTaxonomy), errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		logrus.Error(err)
		return http.StatusInternalServerError
	}
}
