package handlers

import (
	"net/http"

	"hrmanager/config"

	"github.com/gin-gonic/gin"
)

// GetSkillsHandler handles GET /api/skills, serving the configured skill
// catalog used by clients to build specialist and interview forms.
func GetSkillsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, config.AppConfig.SkillCatalog)
}
