package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/classroom/internal/app/controllers"
)

// Controllers groups every controller the router needs.
type Controllers struct {
	User       *controllers.UserController
	Profile    *controllers.ProfileController
	Teacher    *controllers.TeacherController
	Course     *controllers.CourseController
	Student    *controllers.StudentController
	Enrollment *controllers.EnrollmentController
	System     *controllers.SystemController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	// Trailing slashes are trimmed before routing (see middleware.TrimTrailingSlash),
	// so gin must not redirect them.
	router.RedirectTrailingSlash = false
	router.HandleMethodNotAllowed = true
	router.NoRoute(c.System.NotFound)
	router.NoMethod(c.System.MethodNotAllowed)

	router.GET("/", c.System.Sitemap)
	router.GET("/health", c.System.Health)

	users := router.Group("/users")
	{
		users.GET("", c.User.GetAllUsers)
		users.POST("", c.User.CreateUser)
		users.GET("/:id", c.User.GetUserByID)
		users.PUT("/:id", c.User.UpdateUser)
		users.DELETE("/:id", c.User.DeleteUser)
	}

	profiles := router.Group("/profiles")
	{
		profiles.GET("", c.Profile.GetAllProfiles)
		profiles.POST("", c.Profile.CreateProfile)
		profiles.GET("/:id", c.Profile.GetProfileByID)
		profiles.PUT("/:id", c.Profile.UpdateProfile)
		profiles.DELETE("/:id", c.Profile.DeleteProfile)
	}

	teachers := router.Group("/teachers")
	{
		teachers.GET("", c.Teacher.GetAllTeachers)
		teachers.POST("", c.Teacher.CreateTeacher)
		teachers.GET("/:id", c.Teacher.GetTeacherByID)
		teachers.PUT("/:id", c.Teacher.UpdateTeacher)
		teachers.DELETE("/:id", c.Teacher.DeleteTeacher)
	}

	courses := router.Group("/courses")
	{
		courses.GET("", c.Course.GetAllCourses)
		courses.POST("", c.Course.CreateCourse)
		courses.GET("/:id", c.Course.GetCourseByID)
		courses.PUT("/:id", c.Course.UpdateCourse)
		courses.DELETE("/:id", c.Course.DeleteCourse)
	}

	students := router.Group("/students")
	{
		students.GET("", c.Student.GetAllStudents)
		students.POST("", c.Student.CreateStudent)
		students.GET("/:id", c.Student.GetStudentByID)
		students.PUT("/:id", c.Student.UpdateStudent)
		students.DELETE("/:id", c.Student.DeleteStudent)
	}

	// Enrollments have no surrogate id; the item routes take the pair.
	enrollments := router.Group("/enrollments")
	{
		enrollments.GET("", c.Enrollment.GetAllEnrollments)
		enrollments.POST("", c.Enrollment.CreateEnrollment)
		enrollments.PUT("/:student_id/:course_id", c.Enrollment.UpdateEnrollment)
		enrollments.DELETE("/:student_id/:course_id", c.Enrollment.DeleteEnrollment)
	}

	SetupSwagger(router)
}
