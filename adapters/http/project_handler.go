package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	projectUC "github.com/dimasadrian/portfolio/internal/application/usecase/project"
	"github.com/dimasadrian/portfolio/pkg/apperror"
)

type ProjectHandler struct {
	createProjectUC *projectUC.CreateProjectUseCase
	updateProjectUC *projectUC.UpdateProjectUseCase
	deleteProjectUC *projectUC.DeleteProjectUseCase
	getProjectUC    *projectUC.GetProjectUseCase
	listProjectsUC  *projectUC.ListProjectsUseCase
}

func NewProjectHandler(
	createUC *projectUC.CreateProjectUseCase,
	updateUC *projectUC.UpdateProjectUseCase,
	deleteUC *projectUC.DeleteProjectUseCase,
	getUC *projectUC.GetProjectUseCase,
	listUC *projectUC.ListProjectsUseCase,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUC: createUC,
		updateProjectUC: updateUC,
		deleteProjectUC: deleteUC,
		getProjectUC:    getUC,
		listProjectsUC:  listUC,
	}
}

func (h *ProjectHandler) projectFields(c *gin.Context) (projectUC.ProjectFields, func(), bool) {
	var form ProjectForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(bindingError(err))
		return projectUC.ProjectFields{}, nil, false
	}

	image, closer, err := imageChangeFromForm(c, imageField)
	if err != nil {
		c.Error(err)
		return projectUC.ProjectFields{}, nil, false
	}

	return projectUC.ProjectFields{
		Title:       form.Title,
		Description: form.Description,
		TechStack:   form.TechStack,
		Link:        form.Link,
		Image:       image,
	}, func() { closer.Close() }, true
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	fields, done, ok := h.projectFields(c)
	if !ok {
		return
	}
	defer done()

	output, err := h.createProjectUC.Execute(c.Request.Context(), fields)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Project created",
		"data":     ToProjectDTO(output.Project),
		"redirect": output.Redirect,
	})
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}

	fields, done, ok := h.projectFields(c)
	if !ok {
		return
	}
	defer done()

	output, err := h.updateProjectUC.Execute(c.Request.Context(), projectUC.UpdateProjectInput{ID: id, ProjectFields: fields})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Project updated",
		"data":     ToProjectDTO(output.Project),
		"redirect": output.Redirect,
	})
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}
	if err := h.deleteProjectUC.Execute(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}
	p, err := h.getProjectUC.Execute(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProjectDTO(p))
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.listProjectsUC.Execute(c.Request.Context(), projectUC.ListProjectsInput{Limit: queryLimit(c, 0)})
	if err != nil {
		c.Error(apperror.NewInternal("failed to list projects", err))
		return
	}
	c.JSON(http.StatusOK, ToProjectDTOs(projects))
}
