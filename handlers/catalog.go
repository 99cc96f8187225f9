package handlers

import (
	"net/http"

	"venuely/models"
	"venuely/services/catalog"
	"venuely/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes plan, add-on and slot management plus the public
// availability listing.
type CatalogHandler struct {
	Service catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// AvailableSlotsHandler is the public availability endpoint backing the
// booking form's date picker.
func (h *CatalogHandler) AvailableSlotsHandler(c *gin.Context) {
	slots, err := h.Service.AvailableSlots(c.Request.Context(), c.Param("date"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots, "count": len(slots)})
}

// Slots.

func (h *CatalogHandler) CreateSlotHandler(c *gin.Context) {
	var req models.UpsertSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid slot payload: "+err.Error())
		return
	}
	slot, err := h.Service.CreateSlot(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

func (h *CatalogHandler) UpdateSlotHandler(c *gin.Context) {
	var req models.UpsertSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid slot payload: "+err.Error())
		return
	}
	slot, err := h.Service.UpdateSlot(c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

func (h *CatalogHandler) DeleteSlotHandler(c *gin.Context) {
	if err := h.Service.DeleteSlot(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slot deleted"})
}

func (h *CatalogHandler) GetSlotHandler(c *gin.Context) {
	slot, err := h.Service.GetSlot(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, slot)
}

func (h *CatalogHandler) ListSlotsHandler(c *gin.Context) {
	slots, err := h.Service.ListSlots()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots, "count": len(slots)})
}

// Plans. The public listing returns active plans only; admins pass ?all=true
// to include retired plans.

func (h *CatalogHandler) ListPlansHandler(c *gin.Context) {
	activeOnly := c.Query("all") != "true"
	plans, err := h.Service.ListPlans(activeOnly)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans, "count": len(plans)})
}

func (h *CatalogHandler) GetPlanHandler(c *gin.Context) {
	plan, err := h.Service.GetPlan(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *CatalogHandler) CreatePlanHandler(c *gin.Context) {
	var req models.UpsertPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid plan payload: "+err.Error())
		return
	}
	plan, err := h.Service.CreatePlan(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *CatalogHandler) UpdatePlanHandler(c *gin.Context) {
	var req models.UpsertPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid plan payload: "+err.Error())
		return
	}
	plan, err := h.Service.UpdatePlan(c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *CatalogHandler) DeletePlanHandler(c *gin.Context) {
	if err := h.Service.DeletePlan(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted"})
}

// Addons.

func (h *CatalogHandler) ListAddonsHandler(c *gin.Context) {
	availableOnly := c.Query("all") != "true"
	addons, err := h.Service.ListAddons(availableOnly)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"addons": addons, "count": len(addons)})
}

func (h *CatalogHandler) GetAddonHandler(c *gin.Context) {
	addon, err := h.Service.GetAddon(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, addon)
}

func (h *CatalogHandler) CreateAddonHandler(c *gin.Context) {
	var req models.UpsertAddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid add-on payload: "+err.Error())
		return
	}
	addon, err := h.Service.CreateAddon(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, addon)
}

func (h *CatalogHandler) UpdateAddonHandler(c *gin.Context) {
	var req models.UpsertAddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid add-on payload: "+err.Error())
		return
	}
	addon, err := h.Service.UpdateAddon(c.Param("id"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, addon)
}

func (h *CatalogHandler) DeleteAddonHandler(c *gin.Context) {
	if err := h.Service.DeleteAddon(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Add-on deleted"})
}
