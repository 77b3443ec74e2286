package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mazin-goub/Hameed/initializers"
	"github.com/mazin-goub/Hameed/services"
	"github.com/mazin-goub/Hameed/utils"
)

func menuService() *services.MenuService {
	return services.NewMenuService(initializers.DB)
}

// GetMenu returns the customer-facing catalog: available items only.
func GetMenu(ctx *gin.Context) {
	items, err := menuService().ListAvailable()
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"items": items})
}

// GetAllMenuItems returns every item, including unavailable ones.
func GetAllMenuItems(ctx *gin.Context) {
	items, err := menuService().ListAll(utils.CurrentActor(ctx))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"items": items})
}

func CreateMenuItem(ctx *gin.Context) {
	var input services.CreateMenuItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	id, err := menuService().Create(utils.CurrentActor(ctx), input)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"id": id})
}

func UpdateMenuItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid menu item ID")
		return
	}

	var input services.UpdateMenuItemInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := menuService().Update(utils.CurrentActor(ctx), uint(id), input); err != nil {
		respondServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Menu item updated successfully."})
}

func DeleteMenuItem(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid menu item ID")
		return
	}

	if err := menuService().Delete(utils.CurrentActor(ctx), uint(id)); err != nil {
		respondServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Menu item deleted successfully."})
}

// RequestImageUploadSlot hands the admin a one-time presigned PUT URL; the
// returned key is what gets patched onto the menu item afterwards.
func RequestImageUploadSlot(ctx *gin.Context) {
	slot, err := utils.PresignUpload(ctx.Request.Context())
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create upload slot")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"key": slot.Key, "uploadUrl": slot.UploadURL})
}

func SeedMenu(ctx *gin.Context) {
	status, err := menuService().SeedIfEmpty()
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": status})
}
