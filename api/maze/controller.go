package mazeapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/api/identity"
	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/generator"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController serves maze creation, lookup, solving and ranking.
type MazeController struct {
	mazeService i.MazeService
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeService) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze controller needs a maze service")
	}
	return &MazeController{mazeService: ms}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/mazes/ranking", mc.ranking)
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.GET("", mc.list)
		mazes.POST("/generate", mc.generate)
		mazes.GET("/:ID", mc.byID)
		mazes.POST("/:ID/solve", mc.solve)
	}
}

// create stores a caller-supplied layout.
func (mc *MazeController) create(ctx *gin.Context) {
	ownerID, ok := userID(ctx)
	if !ok {
		return
	}

	var request CreateMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := mc.mazeService.Create(ctx, ownerID, request.layout())
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newMazeResponse(record))
}

// generate stores a random Wilson maze.
func (mc *MazeController) generate(ctx *gin.Context) {
	ownerID, ok := userID(ctx)
	if !ok {
		return
	}

	var request GenerateMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seed := time.Now().UnixNano()
	if request.Seed != nil {
		seed = *request.Seed
	}

	record, err := mc.mazeService.Generate(ctx, ownerID, request.Width, request.Height, seed)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newMazeResponse(record))
}

// list returns the caller's mazes.
func (mc *MazeController) list(ctx *gin.Context) {
	ownerID, ok := userID(ctx)
	if !ok {
		return
	}

	records, err := mc.mazeService.ByOwner(ctx, ownerID, queryLimit(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := make([]*MazeResponse, 0, len(records))
	for _, r := range records {
		response = append(response, newMazeResponse(r))
	}
	ctx.JSON(http.StatusOK, response)
}

// byID returns one maze.
func (mc *MazeController) byID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	record, err := mc.mazeService.ByID(ctx, id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newMazeResponse(record))
}

// solve searches a maze for a path.
func (mc *MazeController) solve(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	solution, err := mc.mazeService.Solve(ctx, id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, solution)
}

// ranking lists solved mazes by explored cells.
func (mc *MazeController) ranking(ctx *gin.Context) {
	ranked, err := mc.mazeService.Ranking(ctx, queryLimit(ctx))
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, &RankingResponse{Mazes: ranked})
}

func userID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := identity.UserID(ctx)
	if err != nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return id, true
}

func pathID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

// queryLimit reads ?limit=, leaving range checks to the service.
func queryLimit(ctx *gin.Context) int64 {
	limit, err := strconv.ParseInt(ctx.Query("limit"), 10, 64)
	if err != nil {
		return 0
	}
	return limit
}

// writeError maps service errors to HTTP statuses. A search cut off by the
// solve timeout is reported as 503.
func writeError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, maze.ErrIndexOutOfBounds),
		errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, generator.ErrInvalidDimensions):
		status = http.StatusBadRequest
	case errors.Is(err, dmn.ErrMazeNotFound):
		status = http.StatusNotFound
	case errors.Is(err, dmn.ErrSolveInProgress):
		status = http.StatusConflict
	case errors.Is(err, maze.ErrCancelled):
		status = http.StatusServiceUnavailable
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}
