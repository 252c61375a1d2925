package server

import "github.com/gin-gonic/gin"

type submitReviewRequest struct {
	Rating        int    `json:"rating"`
	Title         string `json:"title"`
	Text          string `json:"text"`
	CustomerTitle string `json:"customerTitle"`
}

func (s *Server) handleSubmitReview(c *gin.Context) {
	var req submitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c)
		return
	}
	sess := s.session(c)
	review, err := s.intake.SubmitReview(c.Request.Context(), sess.Email, sess.Name,
		req.Rating, req.Title, req.Text, req.CustomerTitle)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "Review submitted successfully!", gin.H{"review": review})
}

func (s *Server) handleListReviews(c *gin.Context) {
	reviews, err := s.intake.ListReviews(c.Request.Context(), 50)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "", gin.H{"reviews": reviews})
}

type submitContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (s *Server) handleSubmitContact(c *gin.Context) {
	var req submitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failBinding(c)
		return
	}
	sess := s.session(c)
	err := s.intake.SubmitContact(c.Request.Context(), req.Name, req.Email,
		req.Subject, req.Message, sess.Email, sess.Name)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, "Message sent successfully! We'll get back to you soon.", nil)
}
