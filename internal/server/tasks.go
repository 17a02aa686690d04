package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/td0m/pomoplan/pkg/task"
)

func (s *Server) handleListTasks(c *gin.Context) {
	c.JSON(http.StatusOK, s.tasks.List())
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var d task.Draft
	if err := c.ShouldBindJSON(&d); err != nil {
		badRequest(c, "body", err.Error())
		return
	}
	// ids are always assigned by the server
	d.ID = ""
	t, err := task.Normalize(d, s.now())
	if err != nil {
		abort(c, err)
		return
	}
	if err := s.tasks.Create(t); err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (s *Server) handlePatchTask(c *gin.Context) {
	id := task.ID(c.Param("id"))
	if _, err := s.tasks.Get(id); err != nil {
		abort(c, err)
		return
	}

	bs, err := io.ReadAll(c.Request.Body)
	if err != nil {
		badRequest(c, "body", err.Error())
		return
	}
	var p task.Patch
	if err := json.Unmarshal(bs, &p); err != nil {
		abort(c, asValidation(err))
		return
	}

	now := s.now()
	t, err := s.tasks.Update(id, func(t task.Task) (task.Task, error) {
		return t.Apply(p, now)
	})
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	t, err := s.tasks.Delete(task.ID(c.Param("id")))
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

type weeklyParseRequest struct {
	Text *string `json:"text"`
}

func (s *Server) handleWeeklyParse(c *gin.Context) {
	var req weeklyParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body", err.Error())
		return
	}
	if req.Text == nil {
		badRequest(c, "text", "is required")
		return
	}

	res, err := s.brief.Parse(c.Request.Context(), *req.Text)
	if err != nil {
		abort(c, err)
		return
	}
	if err := s.tasks.Replace(res.Tasks); err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// asValidation reports malformed JSON as caller input errors.
func asValidation(err error) error {
	if statusOf(err) == http.StatusBadRequest {
		return err
	}
	return &task.ValidationError{Field: "body", Reason: err.Error()}
}
