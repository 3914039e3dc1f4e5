package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shvendra/bookmyworker-back/config"
	"github.com/shvendra/bookmyworker-back/database"
	"github.com/shvendra/bookmyworker-back/models"
)

type AuthHandler struct {
	JWTSecret string
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{JWTSecret: cfg.JWTSecret}
}

func (h *AuthHandler) signJWT(u *models.User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":      u.ID,
		"role":     u.Role,
		"name":     u.Name,
		"phone":    u.Phone,
		"district": u.District,
		"exp":      time.Now().Add(ttl).Unix(),
		"iat":      time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.JWTSecret))
}

// sendToken mirrors the cookie+body response the frontend expects.
func (h *AuthHandler) sendToken(c echo.Context, code int, u *models.User, message string) error {
	token, err := h.signJWT(u, 7*24*time.Hour)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "TOKEN_GEN_FAILED"})
	}
	c.SetCookie(&http.Cookie{
		Name:     "token",
		Value:    token,
		HttpOnly: true,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		Path:     "/",
	})
	return c.JSON(code, map[string]any{
		"success": true,
		"message": message,
		"token":   token,
		"user":    u,
	})
}

type RegisterReq struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Password     string `json:"password" validate:"required,min=6"`
	Role         string `json:"role" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	EmployerType string `json:"employerType"`
	State        string `json:"state"`
	District     string `json:"district"`
	Address      string `json:"address"`
	PinCode      string `json:"pinCode"`
}

type LoginReq struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// POST /api/v1/user/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Please fill full form !"})
	}
	if !models.ValidRole(req.Role) {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_ROLE"})
	}

	phone := strings.TrimSpace(req.Phone)
	var dup models.User
	if err := database.DB.Where("phone = ?", phone).First(&dup).Error; err == nil {
		return c.JSON(http.StatusConflict, map[string]any{"success": false, "message": "Phone number already registered !"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "HASH_FAILED"})
	}
	u := models.User{
		Name:         strings.TrimSpace(req.Name),
		Phone:        phone,
		Email:        strings.TrimSpace(strings.ToLower(req.Email)),
		Password:     string(hash),
		Role:         req.Role,
		EmployerType: req.EmployerType,
		State:        req.State,
		District:     req.District,
		Address:      req.Address,
		PinCode:      req.PinCode,
	}
	if err := database.DB.Create(&u).Error; err != nil {
		config.LogError(config.GetLogger(), "handlers", "Register", "create user", phone, err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	return h.sendToken(c, http.StatusCreated, &u, "User Registered Successfully !")
}

// POST /api/v1/user/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Please provide phone number, password and role !"})
	}

	var u models.User
	if err := database.DB.Where("phone = ?", strings.TrimSpace(req.Phone)).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid Phone number Or Password."})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"success": false, "message": "Invalid Phone number Or Password !"})
	}
	if u.Role != req.Role {
		return c.JSON(http.StatusNotFound, map[string]any{
			"success": false,
			"message": "User with provided phone number and " + req.Role + " not found !",
		})
	}
	return h.sendToken(c, http.StatusCreated, &u, "User Logged In Successfully !")
}

// GET /api/v1/user/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     "token",
		Value:    "",
		HttpOnly: true,
		Expires:  time.Now(),
		Path:     "/",
	})
	return c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"message": "Logged Out Successfully !",
	})
}

// GET /api/v1/user/getuser
func (h *AuthHandler) Me(c echo.Context) error {
	caller := callerFrom(c)
	var u models.User
	if err := database.DB.First(&u, caller.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "user": u})
}
