// A very simple gin HTTP server for inspecting a finished optimization run
// from a browser: the run summary, the convergence curve and the best
// schedule found.
package gui

import (
	"net/http"

	"github.com/Anonymous0-0paper/SIREN/internal/model"
	"github.com/Anonymous0-0paper/SIREN/statistics"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var result *model.RunResult
var cpuUtilization map[int]float64
var memoryUtilization map[int]float64
var router *gin.Engine

func registerRoutes() {
	router.GET("/result", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, result)
	})

	router.GET("/convergence", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"convergence_curve": result.Convergence,
		})
	})

	router.GET("/schedule", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, result.BestSchedule)
	})

	router.GET("/utilization", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"cpu":    cpuUtilization,
			"memory": memoryUtilization,
		})
	})

	router.GET("/statistics", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, statistics.Snapshot())
	})
}

func SetUp(runResult *model.RunResult, cpu, memory map[int]float64) {
	result = runResult
	cpuUtilization = cpu
	memoryUtilization = memory

	router = gin.Default()
	router.Use(cors.Default())

	registerRoutes()
}

func Run(addr string) {
	router.Run(addr)
}
