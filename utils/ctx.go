package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/mazin-goub/Hameed/models"
)

// CurrentActor returns the actor stored by the auth middleware. A zero
// actor means the request is unauthenticated.
func CurrentActor(c *gin.Context) models.Actor {
	if v, ok := c.Get("actor"); ok {
		if actor, ok := v.(models.Actor); ok {
			return actor
		}
	}
	return models.Actor{}
}
