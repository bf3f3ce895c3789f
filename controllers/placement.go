package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"internship-program-api/config"
	"internship-program-api/models"
	"internship-program-api/services"
	"internship-program-api/utils"
)

// ListPlacements is the public intake listing: every unit with live
// remaining seats per category.
func ListPlacements(c *gin.Context) {
	svc := services.NewQuotaService(nil)
	rows, err := svc.ListAvailability()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load placements"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"placements": rows})
}

type PlacementRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	StudentQuota *int   `json:"student_quota" binding:"required"`
	GeneralQuota *int   `json:"general_quota" binding:"required"`
}

func (r *PlacementRequest) validate() (string, bool) {
	if *r.StudentQuota < 0 || *r.GeneralQuota < 0 {
		return "Quotas must not be negative", false
	}
	return "", true
}

// CreatePlacement adds a placement unit (admin).
func CreatePlacement(c *gin.Context) {
	var req PlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg, ok := req.validate(); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	now := time.Now()
	unit := models.PlacementUnit{
		Name:         utils.SanitizeInput(req.Name),
		Description:  utils.SanitizeInput(req.Description),
		StudentQuota: *req.StudentQuota,
		GeneralQuota: *req.GeneralQuota,
		CreateAt:     &now,
		UpdateAt:     &now,
	}
	if err := config.DB.Create(&unit).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Placement name already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"placement": unit})
}

// UpdatePlacement edits name, description and quotas (admin). Lowering a
// quota below the occupied seat count is allowed; remaining seats clamp
// to zero.
func UpdatePlacement(c *gin.Context) {
	placementID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid placement ID"})
		return
	}

	var req PlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg, ok := req.validate(); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	var unit models.PlacementUnit
	if err := config.DB.Where("placement_id = ?", placementID).First(&unit).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Placement not found"})
		return
	}

	now := time.Now()
	unit.Name = utils.SanitizeInput(req.Name)
	unit.Description = utils.SanitizeInput(req.Description)
	unit.StudentQuota = *req.StudentQuota
	unit.GeneralQuota = *req.GeneralQuota
	unit.UpdateAt = &now

	if err := config.DB.Save(&unit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update placement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"placement": unit})
}

// DeletePlacement removes a unit (admin). Registrations and profiles
// keep their rows; the foreign key is set null by the constraint.
func DeletePlacement(c *gin.Context) {
	placementID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid placement ID"})
		return
	}

	result := config.DB.Where("placement_id = ?", placementID).Delete(&models.PlacementUnit{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete placement"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Placement not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Placement deleted"})
}
