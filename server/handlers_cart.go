package server

import (
	"fmt"

	"roll-point/catalog"
	"roll-point/models"
	"roll-point/services"

	"github.com/gin-gonic/gin"
)

type addToCartRequest struct {
	ID       int    `json:"id" binding:"required"`
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

func (s *Server) handleAddToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c)
		return
	}
	if req.Type == "" {
		req.Type = models.TypeRoll
	}

	item, found := catalog.FindItem(req.Type, req.ID)
	if !found {
		fail(c, services.ErrItemNotFound)
		return
	}

	cart := &s.session(c).Cart
	services.AddCatalogItem(cart, item, req.Type, req.Quantity)
	if err := s.saveSession(c); err != nil {
		fail(c, err)
		return
	}
	ok(c, fmt.Sprintf("%s added to cart!", item.Name), gin.H{
		"cart_count": len(cart.Items),
		"cart_total": cart.Total,
	})
}

type updateCartQtyRequest struct {
	ID    string `json:"id" binding:"required"`
	Delta int    `json:"delta"`
}

func (s *Server) handleUpdateCartQty(c *gin.Context) {
	var req updateCartQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c)
		return
	}

	cart := &s.session(c).Cart
	if err := services.UpdateQuantity(cart, req.ID, req.Delta); err != nil {
		fail(c, err)
		return
	}
	if err := s.saveSession(c); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Cart updated successfully", gin.H{
		"cart_count": len(cart.Items),
		"cart_total": cart.Total,
	})
}

type removeCartItemRequest struct {
	ID string `json:"id" binding:"required"`
}

func (s *Server) handleRemoveCartItem(c *gin.Context) {
	var req removeCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c)
		return
	}

	cart := &s.session(c).Cart
	if err := services.RemoveItem(cart, req.ID); err != nil {
		fail(c, err)
		return
	}
	if err := s.saveSession(c); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Item removed from cart", gin.H{
		"cart_count": len(cart.Items),
		"cart_total": cart.Total,
	})
}

type addCustomRollRequest struct {
	Name        string `json:"name"`
	Ingredients []int  `json:"ingredients" binding:"required"`
	Image       string `json:"image"`
}

func (s *Server) handleAddCustomRoll(c *gin.Context) {
	var req addCustomRollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c)
		return
	}

	cart := &s.session(c).Cart
	line, err := services.AddCustomRoll(cart, req.Name, req.Ingredients, req.Image)
	if err != nil {
		fail(c, err)
		return
	}
	if err := s.saveSession(c); err != nil {
		fail(c, err)
		return
	}
	ok(c, fmt.Sprintf("%s added to cart!", line.Name), gin.H{
		"cart_count": len(cart.Items),
		"cart_total": cart.Total,
	})
}

func (s *Server) handleGetCartInfo(c *gin.Context) {
	cart := s.session(c).Cart
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	ok(c, "", gin.H{
		"cart":       items,
		"cart_count": len(items),
		"cart_total": cart.Total,
	})
}
