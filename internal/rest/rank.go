package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/errorpool/domain"
	"github.com/Guyuepp/errorpool/internal/rest/response"
)

type RankHandler struct {
	Service domain.RankUsecase
}

func NewRankHandler(svc domain.RankUsecase) *RankHandler {
	return &RankHandler{
		Service: svc,
	}
}

// rankLimit 缺省或非法时交给 usecase 取默认值
func rankLimit(c *gin.Context) int64 {
	limit, err := strconv.ParseInt(c.Query("limit"), 10, 64)
	if err != nil {
		return 0
	}
	return limit
}

func (r *RankHandler) TopGlobal(c *gin.Context) {
	listAr, err := r.Service.TopGlobal(c.Request.Context(), rankLimit(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewArticlesFromDomain(listAr))
}

func (r *RankHandler) TopInSkill(c *gin.Context) {
	skillID, err := strconv.Atoi(c.Param("skill"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrUnknownTaxonomy.Error()})
		return
	}

	listAr, err := r.Service.TopInSkill(c.Request.Context(), skillID, rankLimit(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewArticlesFromDomain(listAr))
}
