package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// StaticHandler serves the prebuilt frontend: three pages plus an
// allow-list of scripts. Anything else under / is a 404.
type StaticHandler struct {
	webDir string
}

// Scripts reachable as GET /<filename>.
var allowedAssets = map[string]bool{
	"app.js":    true,
	"portal.js": true,
	"view.js":   true,
}

func NewStaticHandler(webDir string) *StaticHandler {
	return &StaticHandler{webDir: webDir}
}

func (h *StaticHandler) serve(c *gin.Context, name string) {
	path := filepath.Join(h.webDir, filepath.Base(name))
	if _, err := os.Stat(path); err != nil {
		JSONError(c, http.StatusNotFound, "file not found")
		return
	}
	c.File(path)
}

func (h *StaticHandler) Index(c *gin.Context)  { h.serve(c, "index.html") }
func (h *StaticHandler) Portal(c *gin.Context) { h.serve(c, "portal.html") }
func (h *StaticHandler) View(c *gin.Context)   { h.serve(c, "view.html") }

// Asset is the NoRoute fallback for GET /<filename>.
func (h *StaticHandler) Asset(c *gin.Context) {
	name := filepath.Base(c.Request.URL.Path)
	if c.Request.Method != http.MethodGet || !allowedAssets[name] {
		JSONError(c, http.StatusNotFound, "Not found")
		return
	}
	h.serve(c, name)
}
