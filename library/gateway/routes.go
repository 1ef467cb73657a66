package gateway

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const bearerLookup = "header:Authorization:Bearer "

func (s *Server) registerRoutes() {
	e := s.echo

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	public := e.Group("/api/auth")
	public.POST("/students/register", s.registerStudent)
	public.POST("/students/login", s.loginStudent)
	public.POST("/admins/login", s.loginAdmin)

	e.GET("/api/notifications/ws", s.notifications, s.tokens.authenticate("query:token"), RequireRole(RoleStudent))

	api := e.Group("/api", s.tokens.authenticate(bearerLookup))

	anyRole := api.Group("", RequireRole(RoleStudent, RoleAdmin))
	anyRole.GET("/books", s.listBooks)
	anyRole.GET("/books/:id", s.getBook)
	anyRole.GET("/categories", s.listCategories)
	anyRole.GET("/grade-levels", s.listGradeLevels)

	student := api.Group("/loans", RequireRole(RoleStudent))
	student.POST("", s.requestLoan)
	student.GET("/me", s.myLoans)

	admin := api.Group("/admin", RequireRole(RoleAdmin))
	admin.GET("/dashboard", s.dashboard)

	admin.POST("/books", s.addBook)
	admin.PUT("/books/:id", s.updateBook)
	admin.DELETE("/books/:id", s.removeBook)

	admin.GET("/loans", s.listLoans)
	admin.POST("/loans/:id/approve", s.approveLoan)
	admin.POST("/loans/:id/reject", s.rejectLoan)
	admin.POST("/loans/:id/handover", s.handOverBook)
	admin.POST("/loans/:id/return", s.returnLoan)

	admin.POST("/categories", s.addCategory)
	admin.PUT("/categories/:id", s.renameCategory)
	admin.DELETE("/categories/:id", s.removeCategory)
	admin.POST("/grade-levels", s.addGradeLevel)

	admin.GET("/students", s.listStudents)
	admin.POST("/students", s.createStudent)
	admin.PUT("/students/:id", s.updateStudent)
	admin.DELETE("/students/:id", s.removeStudent)
	admin.GET("/students/:id/loans", s.studentLoans)
	admin.POST("/students/:id/activate", s.activateMembership)
	admin.POST("/students/:id/deactivate", s.deactivateMembership)

	admin.POST("/admins", s.registerAdmin)
}
