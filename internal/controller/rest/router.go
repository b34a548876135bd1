// Package rest HTTP API для фронтенда: группы /admin, /student и /tutor
package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/suhas152/KUBERNETES-IMPLEMENTATION/internal/service"
	"go.uber.org/zap"
)

type Handlers struct {
	adminService   *service.AdminService
	studentService *service.StudentService
	tutorService   *service.TutorService
	bookingService *service.BookingService
	logger         *zap.Logger
}

func NewHandlers(
	adminService *service.AdminService,
	studentService *service.StudentService,
	tutorService *service.TutorService,
	bookingService *service.BookingService,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		adminService:   adminService,
		studentService: studentService,
		tutorService:   tutorService,
		bookingService: bookingService,
		logger:         logger,
	}
}

// Router регистрирует все маршруты.
// Статические сегменты (/student/view/:sid) gin сопоставляет раньше параметров (/student/:studentId/bookings).
func (h *Handlers) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(h.logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	admin := router.Group("/admin")
	{
		admin.GET("/login", h.AdminLogin)
		admin.POST("/tutors/add", h.AdminAddTutor)
		admin.GET("/tutors/view", h.AdminListTutors)
		admin.DELETE("/tutors/delete/:tid", h.AdminDeleteTutor)
		admin.GET("/students/view", h.AdminListStudents)
		admin.DELETE("/students/delete/:sid", h.AdminDeleteStudent)
		admin.GET("/bookings/view", h.AdminListBookings)
		admin.DELETE("/bookings/delete/:bookingId", h.AdminDeleteBooking)
		admin.GET("/bookings/export", h.AdminExportBookings)
	}

	student := router.Group("/student")
	{
		student.POST("/register", h.StudentRegister)
		student.GET("/login", h.StudentLogin)
		student.PUT("/update", h.StudentUpdate)
		student.GET("/view/:sid", h.StudentView)
		student.POST("/bookings/book", h.StudentBookTutor)
		student.GET("/:studentId/bookings", h.StudentBookings)
	}

	tutor := router.Group("/tutor")
	{
		tutor.POST("/add", h.TutorAdd)
		tutor.GET("/login", h.TutorLogin)
		tutor.GET("/view/:tid", h.TutorView)
		tutor.GET("/viewall", h.TutorList)
		tutor.PUT("/update", h.TutorUpdate)
		tutor.DELETE("/delete/:tid", h.TutorDelete)
		tutor.GET("/:tutorId/bookings", h.TutorBookings)
		tutor.PUT("/bookings/:bookingId/status", h.TutorUpdateBookingStatus)
	}

	return router
}

// pathID разбирает числовой параметр пути
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", errInvalidID, name, c.Param(name))
	}
	return id, nil
}

// queryID разбирает числовой параметр запроса
func queryID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", errInvalidID, name, c.Query(name))
	}
	return id, nil
}

// list отдаёт [] вместо null для пустого списка
func list[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
