package handler

import (
	"errors"
	"net/http"

	"taskr/internal/domain"
	"taskr/internal/service"
)

const (
	sessionCookie = "session"
	sessionMaxAge = 86400 // 24 hours, matches the token TTL
)

// AccountHandler serves the login, logout, and registration routes.
type AccountHandler struct {
	accounts     *service.AccountService
	errlog       *ErrorLog
	cookieSecure bool
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accounts *service.AccountService, errlog *ErrorLog, cookieSecure bool) *AccountHandler {
	return &AccountHandler{accounts: accounts, errlog: errlog, cookieSecure: cookieSecure}
}

// HandleLoginPage renders the login form.
// GET /
func (h *AccountHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "login.html", loginPage{Flash: popFlash(w, r)})
}

// HandleLogin processes a login form submission and establishes the
// session on success.
// POST / with email, password
func (h *AccountHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(w, http.StatusOK, "login.html", loginPage{Error: "Invalid Credentials"})
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	identity, err := h.accounts.Login(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			render(w, http.StatusOK, "login.html", loginPage{Error: "Invalid Credentials", Email: email})
			return
		}
		renderServerError(w, r, h.errlog, err)
		return
	}

	token, err := h.accounts.IssueToken(identity)
	if err != nil {
		renderServerError(w, r, h.errlog, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   sessionMaxAge,
	})

	setFlash(w, "Login Successful!", h.cookieSecure)
	http.Redirect(w, r, "/tasks", http.StatusSeeOther)
}

// HandleLogout clears the session cookie unconditionally and redirects to
// the login page.
// GET /logout/
func (h *AccountHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	setFlash(w, "Goodbye!", h.cookieSecure)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleRegisterPage renders the registration form.
// GET /register
func (h *AccountHandler) HandleRegisterPage(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "register.html", registerPage{Flash: popFlash(w, r)})
}

// HandleRegister processes a registration form submission.
// POST /register with name, email, password, confirm
func (h *AccountHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		render(w, http.StatusOK, "register.html", registerPage{Error: "Invalid Form Data"})
		return
	}
	name := r.PostFormValue("name")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirm")

	_, err := h.accounts.Register(r.Context(), name, email, password, confirm)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			render(w, http.StatusOK, "register.html", registerPage{
				Fields: fieldMessages(verr),
				Name:   name,
				Email:  email,
			})
		case errors.Is(err, domain.ErrDuplicateEmail):
			render(w, http.StatusOK, "register.html", registerPage{
				Error: "Email already exists.",
				Name:  name,
				Email: email,
			})
		default:
			renderServerError(w, r, h.errlog, err)
		}
		return
	}

	setFlash(w, "Registered Successfully. Login Now", h.cookieSecure)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
