package handlers

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/nandasafiq/go-storefront/app/helpers"
	"github.com/nandasafiq/go-storefront/app/models"
	"github.com/nandasafiq/go-storefront/app/repositories"
	"github.com/nandasafiq/go-storefront/app/utils/sessions"
	"github.com/unrolled/render"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	render       *render.Render
	userRepo     repositories.UserRepositoryImpl
	sessionStore sessions.SessionStore
	validator    *validator.Validate
}

func NewAuthHandler(r *render.Render, userRepo repositories.UserRepositoryImpl, sessionStore sessions.SessionStore, v *validator.Validate) *AuthHandler {
	return &AuthHandler{
		render:       r,
		userRepo:     userRepo,
		sessionStore: sessionStore,
		validator:    v,
	}
}

type RegisterForm struct {
	FirstName string `form:"first_name" validate:"required,min=2,max=100"`
	LastName  string `form:"last_name" validate:"max=100"`
	Email     string `form:"email" validate:"required,email"`
	Password  string `form:"password" validate:"required,min=6"`
}

func (h *AuthHandler) LoginGet(w http.ResponseWriter, r *http.Request) {
	if helpers.GetUserIDFromContext(r.Context()) != "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Login",
	})
	_ = h.render.HTML(w, http.StatusOK, "auth/login", data)
}

func (h *AuthHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithMessage(w, r, "/login", "error", "Failed to read the form.")
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := h.userRepo.FindByEmail(r.Context(), email)
	if err != nil {
		log.Printf("AuthHandler.LoginPost: failed to look up user %s: %v", email, err)
		redirectWithMessage(w, r, "/login", "error", "Something went wrong, please try again.")
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		redirectWithMessage(w, r, "/login", "error", "Incorrect email or password.")
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		log.Printf("AuthHandler.LoginPost: failed to create session for user %s: %v", user.ID, err)
		redirectWithMessage(w, r, "/login", "error", "Failed to create your session.")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) RegisterGet(w http.ResponseWriter, r *http.Request) {
	if helpers.GetUserIDFromContext(r.Context()) != "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Register",
	})
	_ = h.render.HTML(w, http.StatusOK, "auth/register", data)
}

func (h *AuthHandler) RegisterPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithMessage(w, r, "/register", "error", "Failed to read the form.")
		return
	}

	form := RegisterForm{
		FirstName: r.FormValue("first_name"),
		LastName:  r.FormValue("last_name"),
		Email:     r.FormValue("email"),
		Password:  r.FormValue("password"),
	}

	if err := h.validator.Struct(form); err != nil {
		errs := helpers.ValidationErrors(err)
		data := helpers.GetBaseData(r, map[string]interface{}{
			"Title":  "Register",
			"Errors": errs,
			"Form":   form,
		})
		_ = h.render.HTML(w, http.StatusUnprocessableEntity, "auth/register", data)
		return
	}

	existing, err := h.userRepo.FindByEmail(r.Context(), form.Email)
	if err != nil {
		log.Printf("AuthHandler.RegisterPost: failed to check email %s: %v", form.Email, err)
		redirectWithMessage(w, r, "/register", "error", "Something went wrong, please try again.")
		return
	}
	if existing != nil {
		redirectWithMessage(w, r, "/register", "error", "An account with that email already exists.")
		return
	}

	user := &models.User{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
	}
	if err := h.userRepo.Create(r.Context(), user); err != nil {
		log.Printf("AuthHandler.RegisterPost: failed to create user %s: %v", form.Email, err)
		redirectWithMessage(w, r, "/register", "error", "Failed to create your account.")
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		log.Printf("AuthHandler.RegisterPost: failed to create session for user %s: %v", user.ID, err)
		redirectWithMessage(w, r, "/login", "success", "Account created, please log in.")
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		log.Printf("AuthHandler.Logout: failed to clear session: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
