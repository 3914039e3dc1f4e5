package handlers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shvendra/bookmyworker-back/config"
	"github.com/shvendra/bookmyworker-back/database"
	"github.com/shvendra/bookmyworker-back/models"
)

// Ambiguous glyphs (0/O, 1/I) are left out of the captcha alphabet.
const captchaChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const captchaTTL = 5 * time.Minute

type AdminHandler struct {
	auth *AuthHandler
}

func NewAdminHandler(auth *AuthHandler) *AdminHandler {
	return &AdminHandler{auth: auth}
}

func generateCaptchaText() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = captchaChars[rand.IntN(len(captchaChars))]
	}
	return string(b)
}

// generateCaptchaImage renders the text as an inline SVG data URL; the FE
// just drops it into an <img> src.
func generateCaptchaImage(text string) string {
	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="150" height="50">`+
			`<rect width="150" height="50" fill="#f0f0f0"/>`+
			`<text x="20" y="35" font-family="Arial" font-size="30" fill="#333">%s</text>`+
			`</svg>`, text)
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

// GET /api/v1/admin/captcha
//
// The answer lives in redis under a random id with a TTL instead of in any
// process-wide session field, so it expires on its own and survives restarts.
func (h *AdminHandler) Captcha(c echo.Context) error {
	text := generateCaptchaText()
	id := uuid.NewString()
	if err := database.SetRedisValue("captcha:"+id, text, captchaTTL); err != nil {
		config.LogError(config.GetLogger(), "handlers", "Captcha", "store captcha", id, err)
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"captchaId": id,
		"image":     generateCaptchaImage(text),
	})
}

type adminLoginReq struct {
	Phone     string `json:"phone" validate:"required"`
	Password  string `json:"password" validate:"required"`
	CaptchaID string `json:"captchaId" validate:"required"`
	Captcha   string `json:"captcha" validate:"required"`
}

// POST /api/v1/admin/login
func (h *AdminHandler) Login(c echo.Context) error {
	var req adminLoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Please provide phone, password and captcha.",
		})
	}

	want, found, err := database.GetRedisValue("captcha:" + req.CaptchaID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	if !found {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Captcha not found. Try again.",
		})
	}
	// single use regardless of the outcome
	_ = database.DeleteRedisKey("captcha:" + req.CaptchaID)
	if !strings.EqualFold(strings.TrimSpace(req.Captcha), want) {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Invalid CAPTCHA",
		})
	}

	var u models.User
	if err := database.DB.Where("phone = ?", strings.TrimSpace(req.Phone)).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{
				"success": false,
				"message": "User not found. Please register.",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
	}
	if u.Role != models.RoleAdmin && u.Role != models.RoleSuperAdmin {
		return c.JSON(http.StatusForbidden, map[string]any{"error": "FORBIDDEN"})
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]any{
			"success": false,
			"message": "Invalid phone or password",
		})
	}
	return h.auth.sendToken(c, http.StatusOK, &u, "Logged in successfully!")
}
