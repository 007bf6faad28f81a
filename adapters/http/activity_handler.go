package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	activityUC "github.com/dimasadrian/portfolio/internal/application/usecase/activity"
	"github.com/dimasadrian/portfolio/pkg/apperror"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ActivityHandler struct {
	createActivityUC *activityUC.CreateActivityUseCase
	updateActivityUC *activityUC.UpdateActivityUseCase
	deleteActivityUC *activityUC.DeleteActivityUseCase
	getActivityUC    *activityUC.GetActivityUseCase
	listActivitiesUC *activityUC.ListActivitiesUseCase
	exportActivityUC *activityUC.ExportActivitiesUseCase
}

func NewActivityHandler(
	createUC *activityUC.CreateActivityUseCase,
	updateUC *activityUC.UpdateActivityUseCase,
	deleteUC *activityUC.DeleteActivityUseCase,
	getUC *activityUC.GetActivityUseCase,
	listUC *activityUC.ListActivitiesUseCase,
	exportUC *activityUC.ExportActivitiesUseCase,
) *ActivityHandler {
	return &ActivityHandler{
		createActivityUC: createUC,
		updateActivityUC: updateUC,
		deleteActivityUC: deleteUC,
		getActivityUC:    getUC,
		listActivitiesUC: listUC,
		exportActivityUC: exportUC,
	}
}

func (h *ActivityHandler) activityFields(c *gin.Context) (activityUC.ActivityFields, func(), bool) {
	var form ActivityForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(bindingError(err))
		return activityUC.ActivityFields{}, nil, false
	}

	image, closer, err := imageChangeFromForm(c, imageField)
	if err != nil {
		c.Error(err)
		return activityUC.ActivityFields{}, nil, false
	}

	return activityUC.ActivityFields{
		Title:        form.Title,
		Type:         form.Type,
		Organization: form.Organization,
		Role:         form.Role,
		StartDate:    form.StartDate,
		EndDate:      form.EndDate,
		Description:  form.Description,
		Image:        image,
	}, func() { closer.Close() }, true
}

func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	fields, done, ok := h.activityFields(c)
	if !ok {
		return
	}
	defer done()

	output, err := h.createActivityUC.Execute(c.Request.Context(), fields)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Activity created",
		"data":     ToActivityDTO(output.Activity),
		"redirect": output.Redirect,
	})
}

func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid activity ID", err))
		return
	}

	fields, done, ok := h.activityFields(c)
	if !ok {
		return
	}
	defer done()

	output, err := h.updateActivityUC.Execute(c.Request.Context(), activityUC.UpdateActivityInput{ID: id, ActivityFields: fields})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Activity updated",
		"data":     ToActivityDTO(output.Activity),
		"redirect": output.Redirect,
	})
}

func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid activity ID", err))
		return
	}
	if err := h.deleteActivityUC.Execute(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ActivityHandler) GetActivity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid activity ID", err))
		return
	}
	a, err := h.getActivityUC.Execute(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToActivityDTO(a))
}

// ListActivities accepts repeated or comma separated ?type= and ?exclude=.
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	activities, err := h.listActivitiesUC.Execute(c.Request.Context(), activityUC.ListActivitiesInput{
		Types:        splitQuery(c.QueryArray("type")),
		ExcludeTypes: splitQuery(c.QueryArray("exclude")),
		Limit:        queryLimit(c, 0),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToActivityDTOs(activities))
}

func (h *ActivityHandler) ExportActivities(c *gin.Context) {
	buf, err := h.exportActivityUC.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	filename := fmt.Sprintf("activities-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
