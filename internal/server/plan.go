package server

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/td0m/pomoplan/pkg/plan"
)

func (s *Server) handleGetPlan(c *gin.Context) {
	p := s.plans.Get()
	if p.Blocks == nil {
		p.Blocks = []plan.Block{}
	}
	c.JSON(http.StatusOK, p)
}

type putPlanRequest struct {
	Blocks *[]plan.Edit `json:"blocks"`
}

func (s *Server) handlePutPlan(c *gin.Context) {
	var req putPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body", err.Error())
		return
	}
	if req.Blocks == nil {
		badRequest(c, "blocks", "is required")
		return
	}
	p := plan.Plan{Blocks: plan.SanitizeEdits(*req.Blocks)}
	s.plans.Set(p)
	c.JSON(http.StatusOK, p)
}

// maxBudget caps the budget at a week, keeping the conversion to int exact.
const maxBudget = 7 * 24 * 60

type generatePlanRequest struct {
	MinutesAvailable *float64 `json:"minutesAvailable"`
	Work             int      `json:"work"`
	Short            int      `json:"short"`
	Long             int      `json:"long"`
	LongEvery        int      `json:"longEvery"`
}

func (s *Server) handleGeneratePlan(c *gin.Context) {
	var req generatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body", err.Error())
		return
	}
	if req.MinutesAvailable == nil {
		badRequest(c, "minutesAvailable", "is required")
		return
	}

	minutes := math.Min(math.Floor(*req.MinutesAvailable), maxBudget)
	r := plan.Request{
		MinutesAvailable: int(minutes),
		Policy: plan.Policy{
			Work:      req.Work,
			Short:     req.Short,
			Long:      req.Long,
			LongEvery: req.LongEvery,
		}.WithDefaults(s.policy),
	}
	blocks, err := plan.Generate(s.tasks.List(), r)
	if err != nil {
		abort(c, err)
		return
	}

	now := s.now()
	p := plan.Plan{Blocks: blocks, GeneratedAt: &now}
	s.plans.Set(p)
	c.JSON(http.StatusOK, p)
}
