package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/model"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/service"
)

// TutorAdd POST /tutor/add
func (h *Handlers) TutorAdd(c *gin.Context) {
	var tutor model.Tutor
	if err := c.ShouldBindJSON(&tutor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	_, err := h.tutorService.Add(c.Request.Context(), &tutor)
	h.replyText(c, err, "Tutor added successfully.", nil)
}

// TutorLogin GET /tutor/login?username=&password=
func (h *Handlers) TutorLogin(c *gin.Context) {
	tutor, err := h.tutorService.Login(c.Request.Context(), c.Query("username"), c.Query("password"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tutor)
}

// TutorView GET /tutor/view/:tid
func (h *Handlers) TutorView(c *gin.Context) {
	id, err := pathID(c, "tid")
	if err != nil {
		h.fail(c, err)
		return
	}

	tutor, err := h.tutorService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	if tutor == nil {
		h.fail(c, service.ErrTutorNotFound)
		return
	}

	c.JSON(http.StatusOK, tutor)
}

// TutorList GET /tutor/viewall
func (h *Handlers) TutorList(c *gin.Context) {
	tutors, err := h.tutorService.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list(tutors))
}

// TutorUpdate PUT /tutor/update
func (h *Handlers) TutorUpdate(c *gin.Context) {
	var tutor model.Tutor
	if err := c.ShouldBindJSON(&tutor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	_, err := h.tutorService.UpdateProfile(c.Request.Context(), &tutor)
	h.replyText(c, err, "Tutor profile updated successfully.", map[error]string{
		service.ErrTutorNotFound: "Tutor ID not found.",
	})
}

// TutorDelete DELETE /tutor/delete/:tid
func (h *Handlers) TutorDelete(c *gin.Context) {
	id, err := pathID(c, "tid")
	if err != nil {
		h.fail(c, err)
		return
	}

	err = h.tutorService.Delete(c.Request.Context(), id)
	h.replyText(c, err, "Tutor deleted successfully.", map[error]string{
		service.ErrTutorNotFound: "Tutor ID not found.",
	})
}

// TutorBookings GET /tutor/:tutorId/bookings
func (h *Handlers) TutorBookings(c *gin.Context) {
	id, err := pathID(c, "tutorId")
	if err != nil {
		h.fail(c, err)
		return
	}

	bookings, err := h.bookingService.GetTutorBookings(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, list(bookings))
}

// TutorUpdateBookingStatus PUT /tutor/bookings/:bookingId/status?status=
func (h *Handlers) TutorUpdateBookingStatus(c *gin.Context) {
	id, err := pathID(c, "bookingId")
	if err != nil {
		h.fail(c, err)
		return
	}

	status, err := model.ParseBookingStatus(c.Query("status"))
	if err != nil {
		h.fail(c, fmt.Errorf("%w: %v", service.ErrInvalidStatus, err))
		return
	}

	if err := h.bookingService.UpdateStatus(c.Request.Context(), id, status); err != nil {
		h.fail(c, err)
		return
	}

	c.Status(http.StatusOK)
}
