package api

import (
	"net/http"
	"strconv"

	"github.com/annel0/vxl-engine/internal/logging"
	"github.com/gin-gonic/gin"
)

// RestServer представляет REST API сервер карты
type RestServer struct {
	router *gin.Engine
	svc    *MapService
	port   string
}

// Config содержит конфигурацию для REST сервера
type Config struct {
	Port    string      // порт для запуска сервера, например ":8088"
	Service *MapService // сервис карты
}

// NewRestServer создает новый REST API сервер
func NewRestServer(config Config) *RestServer {
	if config.Port == "" {
		config.Port = ":8088"
	}

	// Устанавливаем режим релиза для gin
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()        // без стандартного logger/recovery
	router.Use(gin.Recovery()) // добавим только recovery

	server := &RestServer{
		router: router,
		svc:    config.Service,
		port:   config.Port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes настраивает маршруты REST API
func (rs *RestServer) setupRoutes() {
	rs.router.GET("/health", rs.handleHealth)

	mapGroup := rs.router.Group("/map")
	{
		mapGroup.GET("/info", rs.handleMapInfo)
		mapGroup.GET("/download", rs.handleMapDownload)
		mapGroup.GET("/point", rs.handleRandomPoint)
		mapGroup.POST("/check", rs.handleCheckSupport)
		mapGroup.POST("/shadows", rs.handleUpdateShadows)
	}
}

// Start запускает REST сервер (блокирующий вызов)
func (rs *RestServer) Start() error {
	logging.Info("🌐 REST API карты слушает на %s", rs.port)
	return rs.router.Run(rs.port)
}

func (rs *RestServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (rs *RestServer) handleMapInfo(c *gin.Context) {
	digest, solids, colors := rs.svc.Info()
	c.JSON(http.StatusOK, gin.H{
		"digest": digest,
		"solids": solids,
		"colors": colors,
	})
}

func (rs *RestServer) handleMapDownload(c *gin.Context) {
	digest, blob, err := rs.svc.Download()
	if err != nil {
		logging.Error("Ошибка кодирования карты: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "map encoding failed"})
		return
	}
	c.Header("X-Map-Digest", digest)
	c.Data(http.StatusOK, "application/octet-stream", blob)
}

// checkRequest — тело запроса проверки опоры
type checkRequest struct {
	X       int  `json:"x"`
	Y       int  `json:"y"`
	Z       int  `json:"z"`
	Destroy bool `json:"destroy"`
}

func (rs *RestServer) handleCheckSupport(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	size := rs.svc.CheckSupport(req.X, req.Y, req.Z, req.Destroy)
	c.JSON(http.StatusOK, gin.H{
		"size":      size,
		"supported": size == 0,
	})
}

func (rs *RestServer) handleUpdateShadows(c *gin.Context) {
	digest := rs.svc.UpdateShadows()
	c.JSON(http.StatusOK, gin.H{"digest": digest})
}

func (rs *RestServer) handleRandomPoint(c *gin.Context) {
	x1 := queryInt(c, "x1", 0)
	y1 := queryInt(c, "y1", 0)
	x2 := queryInt(c, "x2", 512)
	y2 := queryInt(c, "y2", 512)

	x, y := rs.svc.RandomPoint(x1, y1, x2, y2)
	c.JSON(http.StatusOK, gin.H{"x": x, "y": y})
}

// queryInt читает целочисленный query-параметр с дефолтом
func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
