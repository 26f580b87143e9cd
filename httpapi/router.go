package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	enrollauth "github.com/registrarhq/enrollauth"
	"github.com/registrarhq/enrollauth/middleware"
)

// NewRouter wires every route of the record-keeping API onto a gorilla
// router. Gate placement per route:
//
//	GET    /users                     authenticate + admin
//	POST   /users/login               open
//	POST   /users/logout              authenticate
//	POST   /users/reset               open
//	GET    /enrollments               authenticate + admin
//	POST   /enrollments/reset         authenticate + admin
//	GET    /enrollments/{studentId}   authenticate (role handled in handler)
//	POST   /enrollments/{studentId}   authenticate + student(self)
//	DELETE /enrollments/{studentId}   authenticate + student(self)
func NewRouter(engine *enrollauth.Engine) *mux.Router {
	h := &handlers{engine: engine}

	authn := middleware.Authenticate(engine)
	admin := middleware.RequireAdmin(engine)
	student := middleware.RequireStudent(engine)

	r := mux.NewRouter()
	r.Use(recoverPanics)

	r.Handle("/users", authn(admin(http.HandlerFunc(h.listUsers)))).Methods(http.MethodGet)
	r.HandleFunc("/users/login", h.login).Methods(http.MethodPost)
	r.Handle("/users/logout", authn(http.HandlerFunc(h.logout))).Methods(http.MethodPost)
	r.HandleFunc("/users/reset", h.resetUsers).Methods(http.MethodPost)

	r.Handle("/enrollments", authn(admin(http.HandlerFunc(h.listEnrollments)))).Methods(http.MethodGet)
	r.Handle("/enrollments/reset", authn(admin(http.HandlerFunc(h.resetEnrollments)))).Methods(http.MethodPost)
	r.Handle("/enrollments/{studentId}", authn(http.HandlerFunc(h.studentCourses))).Methods(http.MethodGet)
	r.Handle("/enrollments/{studentId}", authn(student(http.HandlerFunc(h.enroll)))).Methods(http.MethodPost)
	r.Handle("/enrollments/{studentId}", authn(student(http.HandlerFunc(h.unenroll)))).Methods(http.MethodDelete)

	return r
}
