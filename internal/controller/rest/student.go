package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/model"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/service"
)

// StudentRegister POST /student/register
func (h *Handlers) StudentRegister(c *gin.Context) {
	var student model.Student
	if err := c.ShouldBindJSON(&student); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	_, err := h.studentService.Register(c.Request.Context(), &student)
	h.replyText(c, err, "Student Registered successfully..", nil)
}

// StudentLogin GET /student/login?username=&password=
func (h *Handlers) StudentLogin(c *gin.Context) {
	student, err := h.studentService.Login(c.Request.Context(), c.Query("username"), c.Query("password"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// StudentUpdate PUT /student/update
func (h *Handlers) StudentUpdate(c *gin.Context) {
	var student model.Student
	if err := c.ShouldBindJSON(&student); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	_, err := h.studentService.UpdateProfile(c.Request.Context(), &student)
	h.replyText(c, err, "Student Profile Updated Successfully", map[error]string{
		service.ErrStudentNotFound: "Student ID Not Found to Update",
		service.ErrGenderRequired:  "Gender cannot be null or empty. Update failed.",
	})
}

// StudentView GET /student/view/:sid
func (h *Handlers) StudentView(c *gin.Context) {
	id, err := pathID(c, "sid")
	if err != nil {
		h.fail(c, err)
		return
	}

	student, err := h.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	if student == nil {
		h.fail(c, service.ErrStudentNotFound)
		return
	}

	c.JSON(http.StatusOK, student)
}

// StudentBookTutor POST /student/bookings/book?studentId=&tutorId=
// Тело запроса - дата-время занятия в виде текста.
func (h *Handlers) StudentBookTutor(c *gin.Context) {
	studentID, err := queryID(c, "studentId")
	if err != nil {
		h.fail(c, err)
		return
	}

	tutorID, err := queryID(c, "tutorId")
	if err != nil {
		h.fail(c, err)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	booking, err := h.bookingService.BookTutor(c.Request.Context(), studentID, tutorID, string(body))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// StudentBookings GET /student/:studentId/bookings
func (h *Handlers) StudentBookings(c *gin.Context) {
	id, err := pathID(c, "studentId")
	if err != nil {
		h.fail(c, err)
		return
	}

	bookings, err := h.bookingService.GetStudentBookings(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, list(bookings))
}
