package middleware

import (
	"net/http"

	"github.com/ScriptedSpythoN/demoos/internal/domain/user"
	"github.com/ScriptedSpythoN/demoos/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireHOD requires the HOD role
func RequireHOD(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrHODAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrHODAccessRequired)
			return
		}

		if role != string(user.RoleHOD) {
			response.HandleError(w, user.ErrHODAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireStaff requires teacher or HOD role
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrStaffAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrStaffAccessRequired)
			return
		}

		role := user.Role(roleStr)
		if role != user.RoleTeacher && role != user.RoleHOD {
			response.HandleError(w, user.ErrStaffAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
