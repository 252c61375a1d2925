package server

import (
	"roll-point/catalog"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleMenu(c *gin.Context) {
	category := c.DefaultQuery("category", "all")
	search := c.Query("search")
	ok(c, "", gin.H{
		"rolls":            catalog.Rolls(category, search),
		"sides":            catalog.Sides(),
		"drinks":           catalog.Drinks("all", ""),
		"categories":       catalog.Categories,
		"current_category": category,
		"search_query":     search,
	})
}

func (s *Server) handleDrinks(c *gin.Context) {
	category := c.DefaultQuery("category", "all")
	search := c.Query("search")
	ok(c, "", gin.H{
		"drinks":           catalog.Drinks(category, search),
		"categories":       catalog.DrinkCategories,
		"category_counts":  catalog.DrinkCategoryCounts(),
		"current_category": category,
		"search_query":     search,
	})
}

func (s *Server) handleIngredients(c *gin.Context) {
	ok(c, "", gin.H{"ingredients": catalog.Ingredients()})
}
