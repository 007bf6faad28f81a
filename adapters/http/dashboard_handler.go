package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	orphanUC "github.com/dimasadrian/portfolio/internal/application/usecase/orphan"
	statsUC "github.com/dimasadrian/portfolio/internal/application/usecase/stats"
	"github.com/dimasadrian/portfolio/pkg/apperror"
)

type DashboardHandler struct {
	statsUC       *statsUC.StatsUseCase
	listOrphansUC *orphanUC.ListOrphansUseCase
}

func NewDashboardHandler(stats *statsUC.StatsUseCase, orphans *orphanUC.ListOrphansUseCase) *DashboardHandler {
	return &DashboardHandler{statsUC: stats, listOrphansUC: orphans}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	out, err := h.statsUC.Execute(c.Request.Context())
	if err != nil {
		c.Error(apperror.NewInternal("failed to count content", err))
		return
	}
	c.JSON(http.StatusOK, StatsDTO{Articles: out.Articles, Projects: out.Projects, Activities: out.Activities})
}

func (h *DashboardHandler) ListOrphans(c *gin.Context) {
	orphans, err := h.listOrphansUC.Execute(c.Request.Context(), queryLimit(c, 0))
	if err != nil {
		c.Error(apperror.NewInternal("failed to list orphaned assets", err))
		return
	}
	dtos := make([]OrphanDTO, len(orphans))
	for i, o := range orphans {
		dtos[i] = ToOrphanDTO(o)
	}
	c.JSON(http.StatusOK, dtos)
}
