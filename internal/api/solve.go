package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/mazebot/grid"
	"github.com/katalvlaran/mazebot/internal/ctxlog"
	"github.com/katalvlaran/mazebot/internal/mazebot"
	"github.com/katalvlaran/mazebot/route"
	"github.com/katalvlaran/mazebot/search"
	"github.com/katalvlaran/mazebot/solver"
)

// SolveResponse is the body of a successful POST /v1/solve.
type SolveResponse struct {
	Name       string   `json:"name,omitempty"`
	Directions string   `json:"directions"`
	Steps      int      `json:"steps"`
	Nodes      int      `json:"nodes"`
	Edges      int      `json:"edges"`
	Expanded   int      `json:"expanded"`
	Mode       string   `json:"mode"`
	Render     []string `json:"render,omitempty"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Class string `json:"class,omitempty"`
}

type solveController struct {
	mode    search.Mode
	verify  bool
	maxSide int
}

// Register registers the solve route.
func (s *solveController) Register(rg *gin.RouterGroup) {
	rg.POST("/solve", s.solve)
}

func (s *solveController) solve(c *gin.Context) {
	mode := s.mode
	if name := c.Query("mode"); name != "" {
		m, err := search.ParseMode(name)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		mode = m
	}
	render, err := strconv.ParseBool(c.DefaultQuery("render", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "render: " + err.Error()})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, bodyLimit(s.maxSide))
	var doc mazebot.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Error: "body exceeds " + strconv.FormatInt(tooBig.Limit, 10) + " bytes",
				Class: "malformed",
			})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Class: "malformed"})
		return
	}
	if len(doc.Map) > s.maxSide {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
			Error: "board side " + strconv.Itoa(len(doc.Map)) + " exceeds " + strconv.Itoa(s.maxSide),
			Class: "malformed",
		})
		return
	}

	ctx := c.Request.Context()
	g, err := doc.Grid()
	if err != nil {
		err = solver.Malformed(err)
		c.JSON(statusOf(err), ErrorResponse{Error: err.Error(), Class: solver.Classify(err)})
		return
	}

	sol, err := solver.Solve(ctx, g, solver.WithMode(mode), solver.WithVerify(s.verify))
	if err != nil {
		ctxlog.FromContext(ctx).WarnContext(ctx, "solve failed", "maze", doc.Name, "class", solver.Classify(err), "error", err)
		c.JSON(statusOf(err), ErrorResponse{Error: err.Error(), Class: solver.Classify(err)})
		return
	}

	resp := SolveResponse{
		Name:       doc.Name,
		Directions: sol.Directions,
		Steps:      sol.Steps,
		Nodes:      sol.Nodes,
		Edges:      sol.Edges,
		Expanded:   sol.Expanded,
		Mode:       sol.Mode.String(),
	}
	if render {
		pts, err := route.Trace(g, sol.Directions)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Class: "invariant"})
			return
		}
		marks := make(map[grid.Point]rune, len(pts))
		for _, p := range pts {
			marks[p] = '.'
		}
		resp.Render = strings.Split(strings.TrimSuffix(g.Render(marks), "\n"), "\n")
	}
	c.JSON(http.StatusOK, resp)
}

// bodyLimit bounds a request body for a board of at most side×side
// cells: a cell is encoded as `"X",` plus up to four bytes of whitespace.
func bodyLimit(side int) int64 {
	return int64(side)*int64(side)*8 + 4096
}

// statusOf maps the solver taxonomy to HTTP status codes.
func statusOf(err error) int {
	switch solver.Classify(err) {
	case "malformed":
		return http.StatusBadRequest
	case "disconnected":
		return http.StatusUnprocessableEntity
	case "canceled":
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
