package server

import (
	"net/http"

	"roll-point/services"

	"github.com/gin-gonic/gin"
)

func (s *Server) handlePlaceOrder(c *gin.Context) {
	sess := s.session(c)

	// The session cart is the source of truth; the request body is only the
	// checkout trigger.
	order, err := s.orders.Place(c.Request.Context(), sess.Email, sess.Name, sess.Cart.Items, sess.Cart.Total)
	if err != nil {
		fail(c, err)
		return
	}

	services.ClearCart(&sess.Cart)
	if err := s.saveSession(c); err != nil {
		fail(c, err)
		return
	}

	if s.notifier != nil {
		go s.notifier.OrderPlaced(order)
	}
	ok(c, "Order placed successfully!", gin.H{
		"order_id":           order.OrderID,
		"estimated_delivery": order.EstimatedDelivery,
	})
}

func (s *Server) handleGetOrders(c *gin.Context) {
	sess := s.session(c)
	all := sess.Email == s.adminEmail && c.Query("all") == "1"

	orders, err := s.orders.List(c.Request.Context(), sess.Email, all)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "", gin.H{"orders": orders})
}

func (s *Server) handleOrderDetails(c *gin.Context) {
	order, err := s.orders.Get(c.Request.Context(), c.Param("order_id"), s.session(c).Email)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "", gin.H{"order": order})
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (s *Server) handleUpdateOrderStatus(c *gin.Context) {
	if s.session(c).Email != s.adminEmail {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Admin access required"})
		return
	}
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c)
		return
	}
	if err := s.orders.UpdateStatus(c.Request.Context(), c.Param("order_id"), req.Status); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Order status updated", nil)
}
