// File: hrmanager/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Specialist endpoints
	GetSpecialistsHandler   gin.HandlerFunc
	CreateSpecialistHandler gin.HandlerFunc
	UpdateSpecialistHandler gin.HandlerFunc
	DeleteSpecialistHandler gin.HandlerFunc

	// Interview endpoints
	GetInterviewsHandler   gin.HandlerFunc
	CreateInterviewHandler gin.HandlerFunc

	// Skill catalog endpoint
	GetSkillsHandler gin.HandlerFunc
}
