package server

import (
	"roll-point/services"

	"github.com/gin-gonic/gin"
)

type signupRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleSignup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c)
		return
	}
	if err := s.accounts.Signup(c.Request.Context(), req.FullName, req.Email, req.Phone, req.Password); err != nil {
		fail(c, err)
		return
	}

	sess := s.session(c)
	sess.Email = req.Email
	sess.Name = req.FullName
	if err := s.saveSession(c); err != nil {
		fail(c, err)
		return
	}
	ok(c, "User registered successfully", nil)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c)
		return
	}
	name, err := s.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	sess := s.session(c)
	sess.Email = req.Email
	sess.Name = name
	if err := s.saveSession(c); err != nil {
		fail(c, err)
		return
	}
	ok(c, "", gin.H{"user_name": name})
}

func (s *Server) handleLogout(c *gin.Context) {
	if err := s.deleteSession(c); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Logged out successfully", nil)
}

func (s *Server) handleCheckAuth(c *gin.Context) {
	sess := s.session(c)
	if !sess.LoggedIn() {
		c.JSON(200, gin.H{"authenticated": false})
		return
	}
	c.JSON(200, gin.H{
		"authenticated": true,
		"user": gin.H{
			"email": sess.Email,
			"name":  sess.Name,
		},
	})
}

type checkEmailRequest struct {
	Email string `json:"email" binding:"required"`
}

func (s *Server) handleCheckEmail(c *gin.Context) {
	var req checkEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c)
		return
	}
	exists, err := s.accounts.EmailExists(c.Request.Context(), req.Email)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "", gin.H{"exists": exists})
}

type checkPhoneRequest struct {
	Phone string `json:"phone" binding:"required"`
}

func (s *Server) handleCheckPhone(c *gin.Context) {
	var req checkPhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c)
		return
	}
	exists, err := s.accounts.PhoneExists(c.Request.Context(), req.Phone)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "", gin.H{"exists": exists})
}

func (s *Server) handleGetUserInfo(c *gin.Context) {
	sess := s.session(c)
	ok(c, "", gin.H{
		"user": gin.H{
			"email":  sess.Email,
			"name":   sess.Name,
			"avatar": services.AvatarURL(sess.Email),
		},
	})
}

type updateProfileRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

func (s *Server) handleUpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c)
		return
	}
	sess := s.session(c)
	if err := s.accounts.UpdateProfile(c.Request.Context(), sess.Email, req.FullName, req.Phone); err != nil {
		fail(c, err)
		return
	}

	sess.Name = req.FullName
	if err := s.saveSession(c); err != nil {
		fail(c, err)
		return
	}
	ok(c, "Profile updated successfully!", nil)
}
