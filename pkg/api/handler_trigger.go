package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/conductor-ci/conductor/pkg/config"
	"github.com/conductor-ci/conductor/pkg/models"
	"github.com/conductor-ci/conductor/pkg/queue"
)

// TriggerRequest creates a task without a board event.
type TriggerRequest struct {
	RepositoryFullName string `json:"repositoryFullName" binding:"required"`
	InstallationID     int64  `json:"installationId" binding:"required"`
	Title              string `json:"title" binding:"required"`
	Description        string `json:"description"`
}

// handleTrigger handles POST /trigger.
func (s *Server) handleTrigger(c *gin.Context) {
	var req TriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	task, err := s.tasks.CreateTask(ctx, models.CreateTaskRequest{
		RepositoryFullName: req.RepositoryFullName,
		InstallationID:     req.InstallationID,
		Title:              req.Title,
		Description:        req.Description,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	err = s.jobs.Enqueue(ctx, config.QueueTasks,
		queue.DecomposeJobID(task.ID),
		queue.TaskJobPayload{TaskID: task.ID, Action: models.ActionDecompose})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.logger.Info("Task triggered manually", "task_id", task.ID, "title", task.Title)
	c.JSON(http.StatusCreated, gin.H{"taskId": task.ID, "status": task.Status})
}
