package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/ScriptedSpythoN/demoos/internal/handler/http/middleware"
	"github.com/ScriptedSpythoN/demoos/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth         AuthHandler
	Student      StudentHandler
	Subject      SubjectHandler
	Attendance   AttendanceHandler
	Medical      MedicalHandler
	Classroom    ClassroomHandler
	Announcement AnnouncementHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, appEnv string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "demoos"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/students", func(r chi.Router) {
				r.Get("/", h.Student.List)
				r.Get("/{rollNo}", h.Student.GetByRollNo)

				// HOD only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHOD)
					r.Post("/", h.Student.Create)
					r.Delete("/{id}", h.Student.Delete)
				})
			})

			r.Route("/subjects", func(r chi.Router) {
				r.Get("/", h.Subject.List)
				r.Get("/{id}", h.Subject.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHOD)
					r.Post("/", h.Subject.Create)
					r.Delete("/{id}", h.Subject.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/students/{rollNo}/stats", h.Attendance.StudentStats)

				// Teaching staff only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.Post("/roll-list", h.Attendance.RollList)
					r.Post("/submit", h.Attendance.Submit)
					r.Get("/students/{rollNo}/audit", h.Attendance.AuditTrail)
					r.Get("/schedule/my", h.Attendance.MySchedule)
				})
			})

			r.Route("/medical", func(r chi.Router) {
				r.Post("/requests", h.Medical.Submit)
				r.Get("/requests/{id}/jobs", h.Medical.Jobs)

				// HOD only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHOD)
					r.Get("/pending/{departmentID}", h.Medical.Pending)
					r.Post("/requests/{id}/review", h.Medical.Review)
				})
			})

			r.Route("/classrooms", func(r chi.Router) {
				r.Get("/", h.Classroom.ListMine)
				r.Post("/join", h.Classroom.Join)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.Post("/", h.Classroom.Create)
				})

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/notes", h.Classroom.ListNotes)
					r.Get("/assignments", h.Classroom.ListAssignments)
					r.Get("/tests", h.Classroom.ListTests)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireStaff)
						r.Post("/notes", h.Classroom.CreateNote)
						r.Post("/assignments", h.Classroom.CreateAssignment)
						r.Post("/tests", h.Classroom.CreateTest)
					})
				})

				r.Route("/assignments/{assignmentID}", func(r chi.Router) {
					r.Post("/submissions", h.Classroom.SubmitAssignment)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireStaff)
						r.Get("/submissions", h.Classroom.ListSubmissions)
					})
				})

				r.Route("/tests/{testID}", func(r chi.Router) {
					r.Get("/questions", h.Classroom.TestQuestions)
					r.Post("/submissions", h.Classroom.SubmitTest)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireStaff)
						r.Get("/results", h.Classroom.TestResults)
					})
				})
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Route("/groups", func(r chi.Router) {
					r.Get("/", h.Announcement.ListGroups)
					r.Post("/", h.Announcement.CreateGroup)
					r.Post("/join", h.Announcement.JoinGroup)

					r.Route("/{groupID}", func(r chi.Router) {
						r.Get("/feed", h.Announcement.Feed)
						r.Post("/", h.Announcement.Post)
						r.Post("/leave", h.Announcement.LeaveGroup)
						r.Get("/members", h.Announcement.ListMembers)
						r.Put("/members/role", h.Announcement.UpdateMemberRole)
						r.Get("/tags", h.Announcement.Tags)
					})
				})

				r.Route("/{id}", func(r chi.Router) {
					r.Delete("/", h.Announcement.Delete)
					r.Post("/votes", h.Announcement.Vote)
					r.Post("/reactions", h.Announcement.React)
				})
			})

			// HOD dashboards
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireHOD)
				r.Get("/dashboard/users", h.Auth.DepartmentStats)
				r.Get("/dashboard/departments/{departmentID}", h.Student.DepartmentAnalytics)
			})
		})
	})
	return r
}
