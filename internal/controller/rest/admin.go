package rest

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/model"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/report"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AdminLogin GET /admin/login?username=&password=
func (h *Handlers) AdminLogin(c *gin.Context) {
	admin, err := h.adminService.Login(c.Request.Context(), c.Query("username"), c.Query("password"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, admin)
}

// AdminAddTutor POST /admin/tutors/add
func (h *Handlers) AdminAddTutor(c *gin.Context) {
	var tutor model.Tutor
	if err := c.ShouldBindJSON(&tutor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	_, err := h.adminService.AddTutor(c.Request.Context(), &tutor)
	h.replyText(c, err, "Tutor Added Successfully", nil)
}

// AdminListTutors GET /admin/tutors/view
func (h *Handlers) AdminListTutors(c *gin.Context) {
	tutors, err := h.adminService.ListTutors(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list(tutors))
}

// AdminDeleteTutor DELETE /admin/tutors/delete/:tid
func (h *Handlers) AdminDeleteTutor(c *gin.Context) {
	id, err := pathID(c, "tid")
	if err != nil {
		h.fail(c, err)
		return
	}

	err = h.adminService.DeleteTutor(c.Request.Context(), id)
	h.replyText(c, err, "Tutor deleted successfully", map[error]string{
		service.ErrTutorNotFound: "Tutor ID not found",
	})
}

// AdminListStudents GET /admin/students/view
func (h *Handlers) AdminListStudents(c *gin.Context) {
	students, err := h.adminService.ListStudents(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list(students))
}

// AdminDeleteStudent DELETE /admin/students/delete/:sid
func (h *Handlers) AdminDeleteStudent(c *gin.Context) {
	id, err := pathID(c, "sid")
	if err != nil {
		h.fail(c, err)
		return
	}

	err = h.adminService.DeleteStudent(c.Request.Context(), id)
	h.replyText(c, err, "Student Deleted Successfully", map[error]string{
		service.ErrStudentNotFound: "Student ID Not Found",
	})
}

// AdminListBookings GET /admin/bookings/view
func (h *Handlers) AdminListBookings(c *gin.Context) {
	bookings, err := h.adminService.ListBookings(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list(bookings))
}

// AdminDeleteBooking DELETE /admin/bookings/delete/:bookingId
func (h *Handlers) AdminDeleteBooking(c *gin.Context) {
	id, err := pathID(c, "bookingId")
	if err != nil {
		h.fail(c, err)
		return
	}

	if err := h.adminService.DeleteBooking(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// AdminExportBookings GET /admin/bookings/export
func (h *Handlers) AdminExportBookings(c *gin.Context) {
	bookings, err := h.adminService.ListBookings(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	var buf bytes.Buffer
	if err := report.WriteBookingsXLSX(&buf, bookings); err != nil {
		h.fail(c, err)
		return
	}

	filename := fmt.Sprintf("bookings-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
