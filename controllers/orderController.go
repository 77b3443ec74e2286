package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mazin-goub/Hameed/initializers"
	"github.com/mazin-goub/Hameed/services"
	"github.com/mazin-goub/Hameed/utils"
)

func orderService() *services.OrderService {
	return services.NewOrderService(initializers.DB)
}

func CreateOrder(ctx *gin.Context) {
	var input services.CreateOrderInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	id, err := orderService().Create(utils.CurrentActor(ctx), input)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"id": id})
}

// GetMyOrders returns the caller's own orders, most recent first.
func GetMyOrders(ctx *gin.Context) {
	orders, err := orderService().ListMine(utils.CurrentActor(ctx))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// GetAllOrders returns every order, most recent first.
func GetAllOrders(ctx *gin.Context) {
	orders, err := orderService().ListAll(utils.CurrentActor(ctx))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// GetOpenOrderCount reports how many orders still await an admin decision.
func GetOpenOrderCount(ctx *gin.Context) {
	count, err := orderService().CountOpen(utils.CurrentActor(ctx))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"openOrderCount": count})
}

func UpdateOrderStatus(ctx *gin.Context) {
	orderId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := orderService().SetStatus(utils.CurrentActor(ctx), uint(orderId), body.Status); err != nil {
		respondServiceError(ctx, err)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order status updated successfully."})
}
